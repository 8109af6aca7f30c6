package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"skillswap_server/models"
)

// DynamoMessageRepository stores chat messages in the Messages table, keyed
// by conversation id and message id.
type DynamoMessageRepository struct {
	Dynamo *DynamoService
}

func (r *DynamoMessageRepository) CreateMessage(ctx context.Context, msg models.Message) error {
	if err := r.Dynamo.PutItem(ctx, models.MessagesTable, msg); err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *DynamoMessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]models.Message, error) {
	items, err := r.Dynamo.QueryItems(ctx, models.MessagesTable, "conversationId = :conversationId",
		map[string]types.AttributeValue{
			":conversationId": &types.AttributeValueMemberS{Value: conversationID},
		},
		nil, 500,
	)
	if err != nil {
		return nil, storeErr(err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	// The sort key is the message id, so order by creation time here.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})

	return messages, nil
}

func (r *DynamoMessageRepository) FindByID(ctx context.Context, messageID string) (*models.Message, error) {
	items, err := r.Dynamo.QueryItemsWithIndex(ctx, models.MessagesTable, models.MessageIDIndex,
		"messageId = :messageId",
		map[string]types.AttributeValue{
			":messageId": &types.AttributeValueMemberS{Value: messageID},
		},
		nil, 1,
	)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("message '%s': %w", messageID, ErrNotFound)
	}

	var msg models.Message
	if err := attributevalue.UnmarshalMap(items[0], &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return &msg, nil
}

func (r *DynamoMessageRepository) MarkDelivered(ctx context.Context, conversationID, messageID, updatedAt string) (bool, error) {
	return r.advance(ctx, conversationID, messageID,
		"#status = :sent",
		map[string]types.AttributeValue{
			":to":   &types.AttributeValueMemberS{Value: models.MessageStatusDelivered},
			":sent": &types.AttributeValueMemberS{Value: models.MessageStatusSent},
			":at":   &types.AttributeValueMemberS{Value: updatedAt},
		},
	)
}

func (r *DynamoMessageRepository) MarkRead(ctx context.Context, conversationID, messageID, updatedAt string) (bool, error) {
	return r.advance(ctx, conversationID, messageID,
		"#status <> :read",
		map[string]types.AttributeValue{
			":to":   &types.AttributeValueMemberS{Value: models.MessageStatusRead},
			":read": &types.AttributeValueMemberS{Value: models.MessageStatusRead},
			":at":   &types.AttributeValueMemberS{Value: updatedAt},
		},
	)
}

// advance applies a guarded status transition. The condition keeps the
// pipeline monotonic even when two clients race; a failed condition is a
// no-op, not an error.
func (r *DynamoMessageRepository) advance(ctx context.Context, conversationID, messageID, condition string, values map[string]types.AttributeValue) (bool, error) {
	key := map[string]types.AttributeValue{
		"conversationId": &types.AttributeValueMemberS{Value: conversationID},
		"messageId":      &types.AttributeValueMemberS{Value: messageID},
	}

	err := r.Dynamo.UpdateItemWithCondition(ctx, models.MessagesTable,
		"SET #status = :to, updatedAt = :at",
		condition,
		key, values,
		map[string]string{"#status": "status"},
	)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return false, nil
		}
		return false, storeErr(err)
	}
	return true, nil
}
