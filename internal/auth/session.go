package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var errMalformedSession = errors.New("malformed session value")

// session values are stored as "<user id>|<created at unix>"
func sessionValue(userID string, createdAt time.Time) string {
	return fmt.Sprintf("%s|%d", userID, createdAt.Unix())
}

func parseSessionValue(val string) (userID string, createdAt time.Time, err error) {
	userID, createdAtUnixStr, found := strings.Cut(val, "|")
	if !found || userID == "" {
		return "", time.Time{}, errMalformedSession
	}
	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %w", errMalformedSession, err)
	}
	return userID, time.Unix(createdAtUnix, 0), nil
}
