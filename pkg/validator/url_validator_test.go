package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https url", "https://example.com", false},
		{"http url", "http://example.com/some/path?q=1", false},
		{"ftp url", "ftp://files.example.com/file.txt", false},
		{"empty", "", true},
		{"not a url", "not a url", true},
		{"missing scheme", "example.com/page", true},
		{"missing host", "https://", true},
		{"javascript scheme", "javascript:alert(1)", true},
		{"data scheme", "data:text/html,hi", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateURL_TooLong(t *testing.T) {
	long := "https://example.com/"
	for len(long) <= 2048 {
		long += "aaaaaaaaaa"
	}

	assert.Error(t, ValidateURL(long))
}

func TestValidateShortCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"alphanumeric", "abc123", true},
		{"with hyphen and underscore", "my-code_1", true},
		{"single char", "a", true},
		{"empty", "", false},
		{"space", "my code", false},
		{"slash", "a/b", false},
		{"plus", "a+b", false},
		{"too long", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateShortCode(tt.code))
		})
	}
}
