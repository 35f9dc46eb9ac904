package config

import (
	"Zero-Desperdicio/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotRepository(t *testing.T) {
	repo, err := NewSlotRepository(nil, "memory")
	require.NoError(t, err)
	assert.NotNil(t, repo)

	_, err = NewSlotRepository(nil, "redis")
	assert.Error(t, err)
}

func TestNewSlotRepository_S3WithoutBucketFails(t *testing.T) {
	t.Setenv("AWS_S3_BUCKET", "")

	repo, err := NewSlotRepository(nil, "s3")
	assert.Error(t, err)
	assert.Nil(t, repo)
}

type households struct{}

func (households) Register(context.Context, domain.RegisterHouseholdRequest) (domain.HouseholdResponse, error) {
	return domain.HouseholdResponse{}, nil
}

func (households) Login(context.Context, domain.LoginHouseholdRequest) (domain.HouseholdResponse, error) {
	return domain.HouseholdResponse{}, nil
}

func (households) GetEmail(context.Context, string) (string, error) { return "casa@example.com", nil }

func TestNewDispatchers(t *testing.T) {
	dispatchers, err := NewDispatchers(nil, households{})
	require.NoError(t, err)
	assert.Empty(t, dispatchers)

	dispatchers, err = NewDispatchers([]string{"mail"}, households{})
	require.NoError(t, err)
	require.Len(t, dispatchers, 1)
	assert.Equal(t, "mail", dispatchers[0].Name())

	t.Setenv("SNS_TOPIC_ARN", "")
	_, err = NewDispatchers([]string{"sns"}, households{})
	assert.Error(t, err)

	_, err = NewDispatchers([]string{"pigeon"}, households{})
	assert.Error(t, err)
}
