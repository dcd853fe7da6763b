package prompt

import (
	"errors"
	"testing"

	"github.com/crateworks/setarch/internal/shared"
)

func TestValidators(t *testing.T) {
	t.Run("NonEmpty", func(t *testing.T) {
		if err := NonEmpty("Night Drive"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		for _, input := range []string{"", "   ", "\t"} {
			if err := NonEmpty(input); !errors.Is(err, shared.ErrEmptyInput) {
				t.Errorf("NonEmpty(%q) = %v, want ErrEmptyInput", input, err)
			}
		}
	})

	t.Run("BPMValidator", func(t *testing.T) {
		validate := BPMValidator(60, 200)

		for _, input := range []string{"60", "128", "200", " 120 "} {
			if err := validate(input); err != nil {
				t.Errorf("validate(%q) = %v, want nil", input, err)
			}
		}

		for _, input := range []string{"59", "201", "-1"} {
			if err := validate(input); !errors.Is(err, shared.ErrInvalidTempo) {
				t.Errorf("validate(%q) = %v, want ErrInvalidTempo", input, err)
			}
		}

		for _, input := range []string{"", "fast", "12.5"} {
			if err := validate(input); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("validate(%q) = %v, want ErrInvalidInput", input, err)
			}
		}
	})

	t.Run("IndexValidator", func(t *testing.T) {
		validate := IndexValidator(3)

		for _, input := range []string{"0", "1", "2"} {
			if err := validate(input); err != nil {
				t.Errorf("validate(%q) = %v, want nil", input, err)
			}
		}

		for _, input := range []string{"-1", "3", "99", "one"} {
			if err := validate(input); err == nil {
				t.Errorf("validate(%q) should fail", input)
			}
		}
	})
}
