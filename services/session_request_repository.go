package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"skillswap_server/models"
)

// DynamoSessionRequestRepository stores incoming session requests in the
// SessionRequests table, keyed by receiver id and room id.
type DynamoSessionRequestRepository struct {
	Dynamo *DynamoService
}

func (r *DynamoSessionRequestRepository) CreateRequest(ctx context.Context, req models.SessionRequest) error {
	err := r.Dynamo.PutItemWithCondition(ctx, models.SessionRequestsTable, req,
		"attribute_not_exists(roomId)", nil, nil)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return fmt.Errorf("session request for room '%s': %w", req.RoomID, ErrAlreadyRequested)
		}
		return storeErr(err)
	}
	return nil
}

func (r *DynamoSessionRequestRepository) ListByReceiver(ctx context.Context, receiverID string) ([]models.SessionRequest, error) {
	items, err := r.Dynamo.QueryItems(ctx, models.SessionRequestsTable, "receiverId = :receiverId",
		map[string]types.AttributeValue{
			":receiverId": &types.AttributeValueMemberS{Value: receiverID},
		},
		nil, 100,
	)
	if err != nil {
		return nil, storeErr(err)
	}

	var reqs []models.SessionRequest
	if err := attributevalue.UnmarshalListOfMaps(items, &reqs); err != nil {
		return nil, fmt.Errorf("failed to parse session requests: %w", err)
	}
	return reqs, nil
}

func (r *DynamoSessionRequestRepository) DeleteRequest(ctx context.Context, receiverID, roomID string) error {
	key := map[string]types.AttributeValue{
		"receiverId": &types.AttributeValueMemberS{Value: receiverID},
		"roomId":     &types.AttributeValueMemberS{Value: roomID},
	}
	if err := r.Dynamo.DeleteItem(ctx, models.SessionRequestsTable, key); err != nil {
		return storeErr(err)
	}
	return nil
}
