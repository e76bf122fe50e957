package model

import "testing"

func TestFullName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"seed user", User{FirstName: "Lee", LastName: "SM"}, "Lee SM"},
		{"empty last name", User{FirstName: "Kim"}, "Kim "},
		{"empty", User{}, " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}
