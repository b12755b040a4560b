package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobmatch-io/jobmatch-cli/internal/matchhub"
)

func TestValidateRegistration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		pass    string
		confirm string
		wantMsg string
	}{
		{name: "ok", email: "a@b.c", pass: "secret1", confirm: "secret1"},
		{name: "missing email", email: "  ", pass: "secret1", confirm: "secret1", wantMsg: "Email is required"},
		{name: "short password", email: "a@b.c", pass: "pw", confirm: "pw", wantMsg: "Password must be at least 6 characters"},
		{name: "mismatch", email: "a@b.c", pass: "secret1", confirm: "secret2", wantMsg: "Passwords do not match"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateRegistration(tc.email, tc.pass, tc.confirm)

			if tc.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			assert.True(t, matchhub.IsValidation(err))
			assert.Equal(t, tc.wantMsg, matchhub.UserMessage(err, ""))
		})
	}
}
