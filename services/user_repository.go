package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"skillswap_server/models"
)

// DynamoUserRepository stores user records in the Users table.
type DynamoUserRepository struct {
	Dynamo *DynamoService
}

func (r *DynamoUserRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := r.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, fmt.Errorf("user '%s': %w", userID, ErrNotFound)
		}
		return nil, storeErr(err)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to parse user record: %w", err)
	}

	return &user, nil
}

func (r *DynamoUserRepository) SaveUser(ctx context.Context, user *models.User) error {
	if err := r.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return storeErr(err)
	}
	return nil
}
