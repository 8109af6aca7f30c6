package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"skillswap_server/models"
)

// DynamoMatchRequestRepository stores one match-request record per user pair
// in the MatchRequests table, keyed by the sorted pair id.
type DynamoMatchRequestRepository struct {
	Dynamo *DynamoService
}

func (r *DynamoMatchRequestRepository) CreateRequest(ctx context.Context, req models.MatchRequest) error {
	// Insert-if-absent at the store, so two concurrent sends cannot both
	// pass a duplicate check. A rejected pair may be requested again.
	condition := "attribute_not_exists(pairId) OR #status = :rejected"
	err := r.Dynamo.PutItemWithCondition(ctx, models.MatchRequestsTable, req, condition,
		map[string]string{"#status": "status"},
		map[string]types.AttributeValue{
			":rejected": &types.AttributeValueMemberS{Value: models.MatchStatusRejected},
		},
	)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return fmt.Errorf("match request between '%s' and '%s': %w", req.SenderID, req.ReceiverID, ErrAlreadyRequested)
		}
		return storeErr(err)
	}
	return nil
}

func (r *DynamoMatchRequestRepository) GetRequest(ctx context.Context, pairID string) (*models.MatchRequest, error) {
	key := map[string]types.AttributeValue{
		"pairId": &types.AttributeValueMemberS{Value: pairID},
	}

	item, err := r.Dynamo.GetItem(ctx, models.MatchRequestsTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, fmt.Errorf("match request '%s': %w", pairID, ErrNotFound)
		}
		return nil, storeErr(err)
	}

	var req models.MatchRequest
	if err := attributevalue.UnmarshalMap(item, &req); err != nil {
		return nil, fmt.Errorf("failed to parse match request: %w", err)
	}

	return &req, nil
}

func (r *DynamoMatchRequestRepository) UpdateStatus(ctx context.Context, pairID, fromStatus, toStatus, respondedAt string) error {
	key := map[string]types.AttributeValue{
		"pairId": &types.AttributeValueMemberS{Value: pairID},
	}

	err := r.Dynamo.UpdateItemWithCondition(ctx, models.MatchRequestsTable,
		"SET #status = :to, respondedAt = :at",
		"#status = :from",
		key,
		map[string]types.AttributeValue{
			":to":   &types.AttributeValueMemberS{Value: toStatus},
			":from": &types.AttributeValueMemberS{Value: fromStatus},
			":at":   &types.AttributeValueMemberS{Value: respondedAt},
		},
		map[string]string{"#status": "status"},
	)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			// Already responded to, or never existed: no pending request.
			return fmt.Errorf("no %s match request '%s': %w", fromStatus, pairID, ErrNotFound)
		}
		return storeErr(err)
	}
	return nil
}

func (r *DynamoMatchRequestRepository) ListByReceiver(ctx context.Context, receiverID, status string) ([]models.MatchRequest, error) {
	return r.listByIndex(ctx, models.MatchRequestReceiverIndex, "receiverId", receiverID, status)
}

func (r *DynamoMatchRequestRepository) ListBySender(ctx context.Context, senderID, status string) ([]models.MatchRequest, error) {
	return r.listByIndex(ctx, models.MatchRequestSenderIndex, "senderId", senderID, status)
}

func (r *DynamoMatchRequestRepository) listByIndex(ctx context.Context, index, keyAttr, keyValue, status string) ([]models.MatchRequest, error) {
	keyCondition := "#key = :key"
	items, err := r.Dynamo.QueryItemsWithIndex(ctx, models.MatchRequestsTable, index, keyCondition,
		map[string]types.AttributeValue{
			":key": &types.AttributeValueMemberS{Value: keyValue},
		},
		map[string]string{"#key": keyAttr},
		100,
	)
	if err != nil {
		return nil, storeErr(err)
	}

	var reqs []models.MatchRequest
	if err := attributevalue.UnmarshalListOfMaps(items, &reqs); err != nil {
		return nil, fmt.Errorf("failed to parse match requests: %w", err)
	}

	if status == "" {
		return reqs, nil
	}

	filtered := reqs[:0]
	for _, req := range reqs {
		if req.Status == status {
			filtered = append(filtered, req)
		}
	}
	return filtered, nil
}
