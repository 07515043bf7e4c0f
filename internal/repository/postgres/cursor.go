package postgres

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agroview/backend/internal/domain"
)

// pageKey is the keyset position of the last record of a page.
type pageKey struct {
	CreatedAt time.Time
	ID        string
}

// sortsAfter reports whether k comes after other in (created_at, id) descending order.
func (k pageKey) sortsAfter(other pageKey) bool {
	if k.CreatedAt.Equal(other.CreatedAt) {
		return k.ID < other.ID
	}
	return k.CreatedAt.Before(other.CreatedAt)
}

func encodeCursor(k pageKey) string {
	raw := strconv.FormatInt(k.CreatedAt.UnixNano(), 10) + "|" + k.ID
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(s string) (pageKey, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return pageKey{}, domain.ErrInvalidCursor
	}
	ts, id, ok := strings.Cut(string(b), "|")
	if !ok {
		return pageKey{}, domain.ErrInvalidCursor
	}
	if _, err := uuid.Parse(id); err != nil {
		return pageKey{}, domain.ErrInvalidCursor
	}
	nanos, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return pageKey{}, domain.ErrInvalidCursor
	}
	return pageKey{CreatedAt: time.Unix(0, nanos).UTC(), ID: id}, nil
}
