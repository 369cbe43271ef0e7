package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/toki/internal/error_values"
)

// Stored documents use the std-compatible config so that map keys are sorted
// and output is stable between writes.
var codec = sonic.ConfigStd

func encode(v any) ([]byte, error) {
	data, err := codec.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding document: %v", errorvalues.ErrStorageFailure, err)
	}
	return data, nil
}

func decode(data []byte, v any) error {
	if err := codec.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: decoding document: %v", errorvalues.ErrStorageFailure, err)
	}
	return nil
}

// readFailure applies the read policy to err. In strict mode err is returned,
// otherwise it is logged and swallowed.
func readFailure(ctx context.Context, strict bool, namespace, key string, err error) error {
	if strict {
		return err
	}
	slog.WarnContext(ctx, "unreadable stored data treated as empty",
		slog.String("namespace", namespace),
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
	return nil
}
