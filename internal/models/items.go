package models

import "time"

type ItemKind string

const (
	KindSocialPost     ItemKind = "social_post"
	KindJobListing     ItemKind = "job_listing"
	KindBlogSubmission ItemKind = "blog_submission"
)

// Engagement holds the raw interaction counters for a content item. The
// counters are a snapshot taken by the caller at batch start; the engine
// never writes them.
type Engagement struct {
	Likes        int `json:"likes" dynamodbav:"likes"`
	Comments     int `json:"comments" dynamodbav:"comments"`
	Shares       int `json:"shares" dynamodbav:"shares"`
	Clicks       int `json:"clicks" dynamodbav:"clicks"`
	Saves        int `json:"saves" dynamodbav:"saves"`
	Applications int `json:"applications" dynamodbav:"applications"`
}

// ScoreableItem is the read-only view of a content item handed to the
// scoring engine. Exactly three kinds implement it: SocialPost, JobListing
// and BlogSubmission. Callers switch on Kind() for variant fields.
type ScoreableItem interface {
	Kind() ItemKind
	ItemID() string
	Author() string
	Created() time.Time
	Text() string
	Counters() Engagement
	Categories() []string
	Tags() []string
	Reports() int
}

type SocialPost struct {
	ID             string     `json:"id"`
	AuthorID       string     `json:"author_id"`
	PostedAt       time.Time  `json:"posted_at"`
	Body           string     `json:"body"`
	CategoryList   []string   `json:"categories,omitempty"`
	TagList        []string   `json:"tags,omitempty"`
	Engagement     Engagement `json:"engagement"`
	ReportCount    int        `json:"report_count"`
	AuthorVerified bool       `json:"author_verified"`
}

func (p SocialPost) Kind() ItemKind        { return KindSocialPost }
func (p SocialPost) ItemID() string        { return p.ID }
func (p SocialPost) Author() string        { return p.AuthorID }
func (p SocialPost) Created() time.Time    { return p.PostedAt }
func (p SocialPost) Text() string          { return p.Body }
func (p SocialPost) Counters() Engagement  { return p.Engagement }
func (p SocialPost) Categories() []string  { return p.CategoryList }
func (p SocialPost) Tags() []string        { return p.TagList }
func (p SocialPost) Reports() int          { return p.ReportCount }

type JobListing struct {
	ID           string     `json:"id"`
	EmployerID   string     `json:"employer_id"`
	PostedAt     time.Time  `json:"posted_at"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	SalaryText   string     `json:"salary_text,omitempty"`
	CategoryList []string   `json:"categories,omitempty"`
	TagList      []string   `json:"tags,omitempty"`
	Engagement   Engagement `json:"engagement"`
	ReportCount  int        `json:"report_count"`

	// Employer verification inputs consumed by the trust factor.
	ContactEmail     string `json:"contact_email,omitempty"`
	Website          string `json:"website,omitempty"`
	Phone            string `json:"phone,omitempty"`
	SocialProfileURL string `json:"social_profile_url,omitempty"`
	EmployerVerified bool   `json:"employer_verified"`
	ProfileComplete  bool   `json:"profile_complete"`
	Featured         bool   `json:"featured"`
}

func (j JobListing) Kind() ItemKind        { return KindJobListing }
func (j JobListing) ItemID() string        { return j.ID }
func (j JobListing) Author() string        { return j.EmployerID }
func (j JobListing) Created() time.Time    { return j.PostedAt }
func (j JobListing) Text() string          { return j.Title + "\n" + j.Description }
func (j JobListing) Counters() Engagement  { return j.Engagement }
func (j JobListing) Categories() []string  { return j.CategoryList }
func (j JobListing) Tags() []string        { return j.TagList }
func (j JobListing) Reports() int          { return j.ReportCount }

type BlogSubmission struct {
	ID           string     `json:"id"`
	AuthorID     string     `json:"author_id"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	Title        string     `json:"title"`
	Markdown     string     `json:"markdown"`
	Backlinks    []string   `json:"backlinks,omitempty"`
	CategoryList []string   `json:"categories,omitempty"`
	TagList      []string   `json:"tags,omitempty"`
	Engagement   Engagement `json:"engagement"`
	ReportCount  int        `json:"report_count"`
}

func (b BlogSubmission) Kind() ItemKind        { return KindBlogSubmission }
func (b BlogSubmission) ItemID() string        { return b.ID }
func (b BlogSubmission) Author() string        { return b.AuthorID }
func (b BlogSubmission) Created() time.Time    { return b.SubmittedAt }
func (b BlogSubmission) Text() string          { return b.Title + "\n" + b.Markdown }
func (b BlogSubmission) Counters() Engagement  { return b.Engagement }
func (b BlogSubmission) Categories() []string  { return b.CategoryList }
func (b BlogSubmission) Tags() []string        { return b.TagList }
func (b BlogSubmission) Reports() int          { return b.ReportCount }

// AuthorStats summarizes an author's prior track record for the history
// factor. Supplied by the persistence collaborator alongside the batch.
type AuthorStats struct {
	Submissions   int     `json:"submissions"`
	PositiveRatio float64 `json:"positive_ratio"`
	OpenReports   int     `json:"open_reports"`
	Reputation    int     `json:"reputation"`
}
