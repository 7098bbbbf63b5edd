package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spacesedan/triberank/internal/clients"
	"github.com/spacesedan/triberank/internal/models"
)

const (
	MODERATION_DECISIONS_TABLE_NAME = "ModerationDecisions"
	INTEREST_PROFILES_TABLE_NAME    = "InterestProfiles"
)

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// BatchInsertDecisions writes a batch of moderation decisions, retrying
// unprocessed items with exponential backoff. DynamoDB caps batch writes
// at 25 items, matching the consumer's flush size.
func BatchInsertDecisions(ctx context.Context, decisions []models.ModerationDecision) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}
	if len(decisions) == 0 {
		return nil
	}

	writeRequests := make([]types.WriteRequest, 0, len(decisions))
	for _, decision := range decisions {
		item, err := attributevalue.MarshalMap(decision)
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to marshal decision %s: %w", decision.ID, err)
		}
		writeRequests = append(writeRequests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}

	out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{
			MODERATION_DECISIONS_TABLE_NAME: writeRequests,
		},
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to batch write decisions: %w", err)
	}

	retryCount := 0
	backoff := 500 * time.Millisecond
	for len(out.UnprocessedItems) > 0 && retryCount < 3 {
		time.Sleep(backoff)
		backoff *= 2

		slog.Warn("[DynamoDB] Retrying unprocessed decisions...",
			slog.Int("attempt", retryCount+1),
			slog.Int("remaining", len(out.UnprocessedItems[MODERATION_DECISIONS_TABLE_NAME])))

		out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: out.UnprocessedItems,
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
		}
		retryCount++
	}

	if len(out.UnprocessedItems) > 0 {
		slog.Error("[DynamoDB] Some decisions were not written even after retries",
			slog.Int("remaining", len(out.UnprocessedItems[MODERATION_DECISIONS_TABLE_NAME])))
	}

	slog.Info("[DynamoDB] Successfully stored moderation decisions",
		slog.Int("count", len(decisions)))
	return nil
}

// GetInterestProfile fetches a user's interest profile. A missing item is
// not an error: the profile is created lazily on first interaction, so the
// second return value reports whether one existed.
func GetInterestProfile(ctx context.Context, userID string) (models.UserInterestProfile, bool, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	out, err := dbClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(INTEREST_PROFILES_TABLE_NAME),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return models.UserInterestProfile{}, false, fmt.Errorf("[DynamoDB] Failed to get interest profile for %s: %w", userID, err)
	}
	if out.Item == nil {
		return models.UserInterestProfile{}, false, nil
	}

	var profile models.UserInterestProfile
	if err := attributevalue.UnmarshalMap(out.Item, &profile); err != nil {
		return models.UserInterestProfile{}, false, fmt.Errorf("[DynamoDB] Failed to unmarshal interest profile for %s: %w", userID, err)
	}
	return profile, true, nil
}

// PutInterestProfile persists an updated interest profile.
func PutInterestProfile(ctx context.Context, profile models.UserInterestProfile) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	item, err := attributevalue.MarshalMap(profile)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal interest profile for %s: %w", profile.UserID, err)
	}

	_, err = dbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(INTEREST_PROFILES_TABLE_NAME),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to put interest profile for %s: %w", profile.UserID, err)
	}

	slog.Debug("[DynamoDB] Stored interest profile",
		slog.String("user_id", profile.UserID))
	return nil
}
