package transforms

import (
	"github.com/jinzhu/copier"
)

// Decorate returns a transformed deep copy of input, leaving input untouched.
func Decorate[T any](input *T) (*T, error) {
	if input == nil {
		return nil, nil
	}

	decorated := new(T)
	if err := copier.CopyWithOption(decorated, input, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	Transform(decorated)

	return decorated, nil
}

func DecorateAll[T any](inputs []*T) ([]*T, error) {
	decorated := make([]*T, 0, len(inputs))

	for _, input := range inputs {
		output, err := Decorate(input)
		if err != nil {
			return nil, err
		}

		decorated = append(decorated, output)
	}

	return decorated, nil
}
