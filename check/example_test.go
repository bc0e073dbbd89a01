// SPDX-License-Identifier: EPL-2.0

package check_test

import (
	"errors"
	"fmt"

	"github.com/ik5/audsig/check"
)

func ExampleValidator_Sine() {
	v := check.New(check.WithStrictNyquist())

	tone, err := v.Sine(8000, 1, 0.5, 440, 0)
	fmt.Println(tone, err)

	_, err = v.Sine(8000, 1, 0.5, 5000, 0)
	fmt.Println(errors.Is(err, check.ErrFrequency))
	// Output:
	// Signal(rate=8000 length=8000 channels=1) <nil>
	// true
}

func ExampleValidator_Echo() {
	v := check.New()

	_, err := v.Echo(3, 1.5, 0.2, check.Must(v.Sine(8000, 1, 0.5, 440, 0)))
	fmt.Println(err)
	// Output: echo: decay=1.5: decay must be in (0, 1)
}
