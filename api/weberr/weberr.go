// Package weberr lets errors carry the HTTP response they should produce and
// extra fields for the error log.
package weberr

import "errors"

type Opt func(error) error

func Wrap(err error, opts ...Opt) error {
	for _, opt := range opts {
		err = opt(err)
	}
	return err
}

func WithResponse(body interface{}, status int) Opt {
	return func(err error) error {
		return &responseError{error: err, body: body, status: status}
	}
}

func WithFields(fields map[string]interface{}) Opt {
	return func(err error) error {
		return &fieldsError{error: err, fields: fields}
	}
}

type responseError struct {
	error
	body   interface{}
	status int
}

func (e *responseError) Unwrap() error { return e.error }

// Response returns the outermost response attached to err.
func Response(err error) (body interface{}, status int, ok bool) {
	var re *responseError
	if errors.As(err, &re) {
		return re.body, re.status, true
	}
	return nil, 0, false
}

type fieldsError struct {
	error
	fields map[string]interface{}
}

func (e *fieldsError) Unwrap() error { return e.error }

// Fields merges every field set attached along the chain of err. When a key
// is set twice the outer value wins.
func Fields(err error) (map[string]interface{}, bool) {
	var merged map[string]interface{}
	for err != nil {
		var fe *fieldsError
		if !errors.As(err, &fe) {
			break
		}
		if merged == nil {
			merged = make(map[string]interface{}, len(fe.fields))
		}
		for k, v := range fe.fields {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
		err = fe.error
	}
	return merged, merged != nil
}
