package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tellerbank/teller/internal/store"
)

type fakeCustomerStore struct {
	taken map[string]bool
	err   error
}

func (f *fakeCustomerStore) UsernameExists(username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.taken[username], nil
}

func TestValidateUsername(t *testing.T) {
	for _, name := range []string{"jdoe", "j.doe-91", "J_Doe", "  padded  "} {
		assert.NoError(t, ValidateUsername(name), name)
	}

	for _, name := range []string{"", "   ", "j doe", "j@doe", "jdoé"} {
		assert.Error(t, ValidateUsername(name), name)
	}
}

func TestValidateNewUsername(t *testing.T) {
	v := NewCustomerValidator(&fakeCustomerStore{taken: map[string]bool{"jdoe": true}})

	assert.NoError(t, v.ValidateNewUsername("fresh"))

	err := v.ValidateNewUsername("jdoe")
	assert.ErrorIs(t, err, store.ErrUsernameTaken)

	assert.Error(t, v.ValidateNewUsername("bad name"))

	broken := NewCustomerValidator(&fakeCustomerStore{err: errors.New("db gone")})
	assert.Error(t, broken.ValidateNewUsername("fresh"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(""))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Jane"))
	assert.Error(t, ValidateName("   "))
}

func TestValidateAge(t *testing.T) {
	assert.NoError(t, ValidateAge("18"))
	assert.NoError(t, ValidateAge(" 42 "))

	for _, val := range []string{"17", "0", "-5", "151", "abc", "18.5", ""} {
		assert.Error(t, ValidateAge(val), val)
	}
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount("10"))
	assert.NoError(t, ValidateAmount("0.01"))

	for _, val := range []string{"0", "-1", "0.00", "abc", "1.234", ""} {
		assert.Error(t, ValidateAmount(val), val)
	}
}

func TestValidateInitialDeposit(t *testing.T) {
	assert.NoError(t, ValidateInitialDeposit(""))
	assert.NoError(t, ValidateInitialDeposit("0"))
	assert.NoError(t, ValidateInitialDeposit("100.50"))

	assert.Error(t, ValidateInitialDeposit("-1"))
	assert.Error(t, ValidateInitialDeposit("abc"))
}
