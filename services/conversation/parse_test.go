package conversation

import (
	"testing"

	"infibot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"3 tickets", 3, true},
		{"1 ticket", 1, true},
		{"I'd like 2 TICKETS please", 2, true},
		{"7", 7, true},
		{"  10  ", 10, true},
		{"12 tickets", 12, true},
		{"a couple", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseQuantity(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, clampQuantity(0))
	assert.Equal(t, 1, clampQuantity(-4))
	assert.Equal(t, 1, clampQuantity(1))
	assert.Equal(t, 6, clampQuantity(6))
	assert.Equal(t, 10, clampQuantity(10))
	assert.Equal(t, 10, clampQuantity(15))
}

func TestUnitPrice(t *testing.T) {
	assert.Equal(t, 500, unitPrice("₹500"))
	assert.Equal(t, 1500, unitPrice("₹1500"))
	assert.Equal(t, 0, unitPrice("free"))
}

func TestParseUserInfo(t *testing.T) {
	info, ok := parseUserInfo("Name: Asha, Age: 25, Gender: Female, Phone: 9876543210, Email: a@b.com")
	require.True(t, ok)
	assert.Equal(t, models.UserInfo{
		Name:   "Asha",
		Age:    25,
		Gender: "Female",
		Phone:  "9876543210",
		Email:  "a@b.com",
	}, info)
}

func TestParseUserInfo_NewlineDelimited(t *testing.T) {
	info, ok := parseUserInfo("name: Ravi\nphone: 9123456780\nemail: ravi@example.com")
	require.True(t, ok)
	assert.Equal(t, "Ravi", info.Name)
	assert.Equal(t, "9123456780", info.Phone)
}

func TestParseUserInfo_MissingRequiredFields(t *testing.T) {
	for _, input := range []string{
		"Name: Asha",
		"just some chatter",
		"Phone: 9876543210, Email: a@b.com",
	} {
		_, ok := parseUserInfo(input)
		assert.False(t, ok, "input %q", input)
	}
}
