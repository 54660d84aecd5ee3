package generator

import (
	"strconv"
)

// DeriveItemSeed builds the seed key of one book from the user seed and its
// position. Items never depend on each other, so any page can be regenerated
// on its own.
func DeriveItemSeed(userSeed string, page, itemOffset int) string {
	return userSeed + "-" + strconv.Itoa(page) + "-" + strconv.Itoa(itemOffset)
}
