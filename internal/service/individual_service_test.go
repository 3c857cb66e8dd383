package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerbank/teller/internal/constants"
	"github.com/tellerbank/teller/internal/store"
)

func validSignup() SignupInput {
	return SignupInput{
		Username:  "jdoe",
		Password:  "hunter2hunter2",
		FirstName: "Jane",
		LastName:  "Doe",
		Age:       34,
		Address:   "12 Main St",
	}
}

func TestSignup(t *testing.T) {
	repo := newMemRepo()
	svc := NewIndividualService(repo)

	ind, accounts, err := svc.Signup(validSignup())
	require.NoError(t, err)

	assert.NotEmpty(t, ind.ID)
	assert.Equal(t, "jdoe", ind.Username)
	assert.Equal(t, constants.StatusActive, ind.Status)

	// password is stored as a sha256 hex digest, never raw
	assert.Len(t, ind.PasswordHash, 64)
	assert.NotContains(t, ind.PasswordHash, "hunter2")

	require.Len(t, accounts, 3)
	types := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		types = append(types, acc.Type)
		assert.Equal(t, ind.ID, acc.IndividualID)
		assert.Equal(t, int64(0), acc.Balance)
		assert.Equal(t, constants.StatusActive, acc.Status)
	}
	assert.Equal(t, []string{constants.TypeChecking, constants.TypeSavings, constants.TypeCreditCard}, types)

	stored, err := repo.GetAccountsByIndividual(ind.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestSignup_Validation(t *testing.T) {
	repo := newMemRepo()
	svc := NewIndividualService(repo)

	tests := []struct {
		name   string
		mutate func(*SignupInput)
	}{
		{"empty username", func(in *SignupInput) { in.Username = "  " }},
		{"short password", func(in *SignupInput) { in.Password = "short" }},
		{"under age", func(in *SignupInput) { in.Age = 17 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSignup()
			tt.mutate(&input)

			_, _, err := svc.Signup(input)
			assert.Error(t, err)
		})
	}

	// nothing persisted by the failed attempts
	assert.Empty(t, repo.individuals)
	assert.Empty(t, repo.accounts)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	repo := newMemRepo()
	svc := NewIndividualService(repo)

	_, _, err := svc.Signup(validSignup())
	require.NoError(t, err)

	second := validSignup()
	second.FirstName = "John"
	_, _, err = svc.Signup(second)
	assert.ErrorIs(t, err, store.ErrUsernameTaken)

	// the rejected signup must not leave partial accounts behind
	assert.Len(t, repo.individuals, 1)
	assert.Len(t, repo.accounts, 3)
}

func TestIndividualAuthenticate(t *testing.T) {
	repo := newMemRepo()
	svc := NewIndividualService(repo)

	created, _, err := svc.Signup(validSignup())
	require.NoError(t, err)

	ind, err := svc.Authenticate("jdoe", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, ind.ID)

	_, err = svc.Authenticate("jdoe", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIndividualAuthenticate_InactiveCustomer(t *testing.T) {
	repo := newMemRepo()
	svc := NewIndividualService(repo)

	created, _, err := svc.Signup(validSignup())
	require.NoError(t, err)
	repo.individuals[created.ID].Status = constants.StatusClosed

	_, err = svc.Authenticate("jdoe", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestHashPassword(t *testing.T) {
	// sha256("changeme"), the digest the seeded staff login carries
	assert.Equal(t,
		"057ba03d6c44104863dc7361fe4578965d1887360f90a0895882e58a6248fc86",
		HashPassword("changeme"))
	assert.NotEqual(t, HashPassword("a"), HashPassword("b"))
}
