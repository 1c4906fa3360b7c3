package gravatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// URL derives the avatar for an email address. Same email, same URL:
// size 200, pg rating, "mm" placeholder when the email has no gravatar.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}
