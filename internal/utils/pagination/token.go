package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/flourmill/mill_ledger/internal/apperrors"
)

const timeFormat = time.RFC3339Nano

// CheckpointCursor identifies a stored balance checkpoint of one account.
type CheckpointCursor struct {
	CheckpointID string
	AccountID    string
	AsOf         time.Time
}

// EncodeCheckpointToken creates an opaque, URL-safe token for a checkpoint.
func EncodeCheckpointToken(cursor CheckpointCursor) string {
	tokenStr := strings.Join([]string{cursor.CheckpointID, cursor.AccountID, cursor.AsOf.UTC().Format(timeFormat)}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCheckpointToken parses a token produced by EncodeCheckpointToken.
// All failures match apperrors.ErrValidation.
func DecodeCheckpointToken(token string) (CheckpointCursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return CheckpointCursor{}, fmt.Errorf("%w: invalid checkpoint token format (base64 decode): %w", apperrors.ErrValidation, err)
	}

	parts := strings.Split(string(decodedBytes), "|")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return CheckpointCursor{}, fmt.Errorf("%w: invalid checkpoint token format (split)", apperrors.ErrValidation)
	}

	asOf, err := time.Parse(timeFormat, parts[2])
	if err != nil {
		return CheckpointCursor{}, fmt.Errorf("%w: invalid checkpoint token format (as-of parse): %w", apperrors.ErrValidation, err)
	}

	return CheckpointCursor{CheckpointID: parts[0], AccountID: parts[1], AsOf: asOf}, nil
}
