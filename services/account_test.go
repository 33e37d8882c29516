package services

import (
	"context"
	"net/http"
	"testing"

	"CareSphere/models"
	"CareSphere/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccountNilBody(t *testing.T) {
	account, err := CreateAccount(context.Background(), models.RolePatient, nil)
	require.Error(t, err)
	assert.Nil(t, account)
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))
}
