// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"m4o.io/tzmap/model"
)

// -- enumerated Value
type enumValue[T fmt.Stringer] struct {
	value    T
	parse    func(string) (T, error)
	typename string
}

// NewEnumValue creates a cobra Value for a named enumeration; parse converts
// a flag argument into a value. Unknown names are rejected while the flags
// are parsed; the canonical name is what String reports, and what viper
// reads back when the flag is bound.
func NewEnumValue[T fmt.Stringer](def T, parse func(string) (T, error), typename string) pflag.Value {
	return &enumValue[T]{
		value:    def,
		parse:    parse,
		typename: typename,
	}
}

// NewFillPolicyValue creates a cobra Value for a model.FillPolicy.
func NewFillPolicyValue(def model.FillPolicy) pflag.Value {
	return NewEnumValue(def, model.ParseFillPolicy, "policy")
}

// NewColorKeyValue creates a cobra Value for a model.ColorKey.
func NewColorKeyValue(def model.ColorKey) pflag.Value {
	return NewEnumValue(def, model.ParseColorKey, "key")
}

func (e *enumValue[T]) Set(val string) error {
	v, err := e.parse(val)
	if err != nil {
		return err
	}

	e.value = v

	return nil
}

func (e *enumValue[T]) Type() string {
	return e.typename
}

func (e *enumValue[T]) String() string {
	return e.value.String()
}
