package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/contentapi-io/cda-client/pkg/cda"
)

// Validation failures reported by the resource decoders.
var (
	errMissingSysID  = errors.New("missing required field sys.id")
	errMissingFields = errors.New("missing required field fields")
)

// decodeResource parses raw response bytes and applies the resource
// validator. Both parse failures and validator rejections surface as
// *cda.UnparseableJSONError carrying the original bytes: the parser's
// message for malformed JSON, the validator's message for malformed
// resources. A single malformed field fails the entire request.
func decodeResource[T any](data []byte, validate func(*T) error) (*T, error) {
	var value T

	err := json.Unmarshal(data, &value)
	if err != nil {
		return nil, &cda.UnparseableJSONError{Data: data, Message: err.Error()}
	}

	if validate != nil {
		err = validate(&value)
		if err != nil {
			return nil, &cda.UnparseableJSONError{Data: data, Message: err.Error()}
		}
	}

	return &value, nil
}

func validateSpace(space *cda.Space) error {
	if space.Sys.ID == "" {
		return errMissingSysID
	}

	return nil
}

func validateContentType(contentType *cda.ContentType) error {
	if contentType.Sys.ID == "" {
		return errMissingSysID
	}

	return nil
}

func validateEntry(entry *cda.Entry) error {
	if entry.Sys.ID == "" {
		return errMissingSysID
	}

	if entry.Fields == nil {
		return errMissingFields
	}

	return nil
}

func validateAsset(asset *cda.Asset) error {
	if asset.Sys.ID == "" {
		return errMissingSysID
	}

	return nil
}

// collectionValidator lifts an item validator to the collection wrapper.
func collectionValidator[T any](validate func(*T) error) func(*cda.Collection[T]) error {
	return func(collection *cda.Collection[T]) error {
		for i := range collection.Items {
			err := validate(&collection.Items[i])
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}

		return nil
	}
}
