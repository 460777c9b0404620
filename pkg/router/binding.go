package router

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

func bindRequest(r *http.Request, method string, req any) error {
	switch method {
	case http.MethodGet:
		return bindQuery(r, req)
	case http.MethodPost:
		return bindJSON(r, req)
	default:
		return fmt.Errorf("unsupported method %s", method)
	}
}

func bindQuery(r *http.Request, req any) error {
	v := reflect.ValueOf(req).Elem()
	for i := 0; i < v.NumField(); i++ {
		name, _, _ := strings.Cut(v.Type().Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		queryVal := r.URL.Query().Get(name)
		if queryVal == "" {
			continue
		}

		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(queryVal)

		case reflect.Int, reflect.Int64:
			val, err := strconv.ParseInt(queryVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value of %s: %w", name, err)
			}
			v.Field(i).SetInt(val)

		case reflect.Bool:
			val, err := strconv.ParseBool(queryVal)
			if err != nil {
				return fmt.Errorf("invalid value of %s: %w", name, err)
			}
			v.Field(i).SetBool(val)

		default:
			return fmt.Errorf("unsupported type of %s", name)
		}
	}

	return nil
}

func bindJSON(r *http.Request, req any) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	if len(b) == 0 {
		return nil
	}

	return json.Unmarshal(b, req)
}
