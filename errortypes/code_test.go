package errortypes

import (
	"errors"
	"testing"
)

func TestReadCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "coded-error",
			err:  &Truncated{MessageName: "NativeRequest"},
			want: TruncatedErrorCode,
		},
		{
			name: "coded-warning",
			err:  &UnknownSpecVersion{MessageName: "NativeRequest", Ver: "3.0"},
			want: UnknownSpecVersionWarningCode,
		},
		{
			name: "default-error",
			err:  errors.New("default error"),
			want: UnknownErrorCode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadCode(tt.err); got != tt.want {
				t.Errorf("ReadCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
