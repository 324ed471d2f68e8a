package transforms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/setoferry/setoferry/pkg/ctdf"
)

// Types that transforms can be written against, keyed by the name used in the
// definition files.
var transformableTypes = map[string]any{
	"ctdf.Operator": ctdf.Operator{},
	"ctdf.Stop":     ctdf.Stop{},
}

// TransformDefinition sets Data fields on every value of Type for which the
// Match expression is true. Match is evaluated with the value's fields in
// scope, eg. `Name contains "汽船"`.
type TransformDefinition struct {
	Type  string                 `yaml:"type"`
	Match string                 `yaml:"match"`
	Data  map[string]interface{} `yaml:"data"`

	program *vm.Program
}

func (t *TransformDefinition) Compile() error {
	env, exists := transformableTypes[t.Type]
	if !exists {
		return fmt.Errorf("unknown transform type %q", t.Type)
	}

	match := strings.TrimSpace(t.Match)
	if match == "" {
		match = "true"
	}

	program, err := expr.Compile(match, expr.Env(env), expr.AsBool())
	if err != nil {
		return fmt.Errorf("compiling match for %s: %w", t.Type, err)
	}

	t.program = program

	return nil
}

func (t *TransformDefinition) Transform(inputTypeOf reflect.Type, inputValue reflect.Value) {
	if !inputValue.IsValid() || inputValue.Kind() != reflect.Struct {
		return
	}
	if t.program == nil || inputTypeOf.String() != t.Type {
		return
	}

	output, err := expr.Run(t.program, inputValue.Interface())
	if err != nil {
		return
	}
	if isMatch, ok := output.(bool); !ok || !isMatch {
		return
	}

	for key, value := range t.Data {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || !field.CanSet() {
			continue
		}

		newValue := reflect.ValueOf(value)
		if !newValue.IsValid() {
			continue
		}

		if newValue.Type().AssignableTo(field.Type()) {
			field.Set(newValue)
		} else if newValue.Type().ConvertibleTo(field.Type()) {
			field.Set(newValue.Convert(field.Type()))
		}
	}
}

// Transform applies every loaded definition to input, which must be a pointer
// to a struct or a slice of them. Input is modified in place.
func Transform(input interface{}) {
	if input == nil {
		return
	}

	inputValueOf := reflect.ValueOf(input)

	if inputValueOf.Kind() == reflect.Slice {
		for i := 0; i < inputValueOf.Len(); i++ {
			transformValue(inputValueOf.Index(i))
		}
	} else {
		transformValue(inputValueOf)
	}
}

func transformValue(inputValueOf reflect.Value) {
	if inputValueOf.Kind() != reflect.Pointer || inputValueOf.IsNil() {
		return
	}

	inputValue := inputValueOf.Elem()

	for _, transformDef := range transforms {
		transformDef.Transform(inputValue.Type(), inputValue)
	}
}
