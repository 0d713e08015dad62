package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// loadFromEnv overwrites config fields whose env tag names a set environment
// variable. Only the string and int kinds the Config struct declares are
// handled; the term cycle has no env form and comes from the file alone.
func loadFromEnv(config *Config) error {
	return overrideFields(reflect.ValueOf(config).Elem())
}

func overrideFields(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() == reflect.Struct {
			if err := overrideFields(field); err != nil {
				return err
			}
			continue
		}

		name := t.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("env var %s: invalid integer %q", name, raw)
			}
			field.SetInt(int64(n))
		default:
			return fmt.Errorf("env var %s: unsupported field kind %s", name, field.Kind())
		}
	}
	return nil
}
