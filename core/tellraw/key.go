// Copyright 2024 bbaa
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tellraw

import (
	"fmt"
	"strings"
)

const MinecraftNamespace = "minecraft"

// Key is a namespaced resource location such as minecraft:diamond.
type Key struct {
	Namespace string
	Value     string
}

func NewKey(namespace string, value string) (Key, error) {
	if !validNamespace(namespace) {
		return Key{}, fmt.Errorf("%w: namespace %q", ErrInvalidKey, namespace)
	}
	if !validValue(value) {
		return Key{}, fmt.Errorf("%w: value %q", ErrInvalidKey, value)
	}
	return Key{Namespace: namespace, Value: value}, nil
}

// ParseKey parses "namespace:value"; a bare value gets the minecraft namespace.
func ParseKey(s string) (Key, error) {
	namespace, value, ok := strings.Cut(s, ":")
	if !ok {
		return NewKey(MinecraftNamespace, s)
	}
	if namespace == "" {
		namespace = MinecraftNamespace
	}
	return NewKey(namespace, value)
}

func MustKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func (k Key) IsZero() bool {
	return k.Namespace == "" && k.Value == ""
}

func (k Key) String() string {
	if k.IsZero() {
		return ""
	}
	return k.Namespace + ":" + k.Value
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func validNamespace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '.' || r == '-') {
			return false
		}
	}
	return true
}

func validValue(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '.' || r == '-' || r == '/') {
			return false
		}
	}
	return true
}
