package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "simple", in: "user@example.com", want: "user@example.com"},
		{name: "normalized_case", in: "User@Example.COM", want: "user@example.com"},
		{name: "trimmed", in: "  user@example.com  ", want: "user@example.com"},
		{name: "plus_and_dots", in: "first.last+tag@sub.example.io", want: "first.last+tag@sub.example.io"},
		{name: "empty", in: "", wantErr: true},
		{name: "spaces_only", in: "   ", wantErr: true},
		{name: "no_at", in: "bad-email", wantErr: true},
		{name: "no_domain_dot", in: "user@example", wantErr: true},
		{name: "short_tld", in: "user@example.c", wantErr: true},
		{name: "missing_local", in: "@example.com", wantErr: true},
		{name: "space_inside", in: "us er@example.com", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := validateEmail(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidEmail)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{name: "ok", in: "Pass1234"},
		{name: "ok_min_length", in: "abcdef12"},
		{name: "ok_unicode_letters", in: "пароль77"},
		{name: "empty", in: "", wantErr: ErrEmptyPassword},
		{name: "too_short", in: "short1", wantErr: ErrWeakPassword},
		{name: "seven_chars", in: "abcde12", wantErr: ErrWeakPassword},
		{name: "no_digit", in: "onlyletters", wantErr: ErrWeakPassword},
		{name: "no_letter", in: "12345678", wantErr: ErrWeakPassword},
		{name: "symbols_only", in: "!!!!!!!!", wantErr: ErrWeakPassword},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := validatePassword(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}
