//go:build unit

package user_test

import (
	"strings"
	"testing"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("success: defaults build an active customer", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected := user.NewUser(email, "hashed_password", user.RoleCustomer, nil)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Nil(t, actual.TenantID())
	})

	t.Run("success: self signup is always a customer", func(t *testing.T) {
		email, _ := user.NewEmail("ahmed@example.com")
		u := user.NewCustomer(email, "hash", user.NewFullName("  Ahmed Al Said "), "+96891234567")

		assert.Equal(t, user.RoleCustomer, u.Role())
		assert.Nil(t, u.TenantID())
		assert.Equal(t, "+96891234567", u.Phone())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "success: valid address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "error: empty",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "error: malformed",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "error: missing @",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "success: customer",
				mutate: func(b *builder.UserBuilder) { b.WithRole("customer") },
			},
			{
				name:   "success: owner with tenant",
				mutate: func(b *builder.UserBuilder) { b.AsOwnerOf(uuid.New()) },
			},
			{
				name:   "success: super admin",
				mutate: func(b *builder.UserBuilder) { b.AsSuperAdmin() },
			},
			{
				name:   "error: legacy role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "error: empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestRoleParsing(t *testing.T) {
	for _, s := range []string{"customer", "owner", "super_admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}
}

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role, min user.Role
		want      bool
	}{
		{user.RoleSuperAdmin, user.RoleOwner, true},
		{user.RoleOwner, user.RoleOwner, true},
		{user.RoleOwner, user.RoleCustomer, true},
		{user.RoleCustomer, user.RoleOwner, false},
		{user.RoleOwner, user.RoleSuperAdmin, false},
		{user.Role("admin"), user.RoleCustomer, false},
		{user.RoleSuperAdmin, user.Role(""), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.AtLeast(tt.min), "%s >= %s", tt.role, tt.min)
	}
	assert.True(t, user.RoleSuperAdmin.IsStaff())
	assert.False(t, user.RoleOwner.IsStaff())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewPhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "success: local number", input: "99887766"},
		{name: "success: surrounding spaces are trimmed", input: "  +96891234567 "},
		{name: "success: eight arabic-indic digits", input: "٩٩٨٨٧٧٦٦"},
		{name: "error: seven digits", input: "9988776", errIs: user.ErrInvalidPhone},
		{name: "error: four arabic-indic digits", input: "٩٩٨٨", errIs: user.ErrInvalidPhone},
		{name: "error: blank", input: "        ", errIs: user.ErrInvalidPhone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			phone, err := user.NewPhone(c.input)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(c.input), phone.Value())
		})
	}
}
