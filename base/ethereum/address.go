package ethereum

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// FormatAddress shortens an address for display, e.g.
// 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045 -> 0xd8dA...6045.
// Casing is normalized to the checksum form first so mixed-case and
// lowercase inputs of the same address produce identical output.
// Invalid input returns an empty string.
func FormatAddress(address string) string {
	if !common.IsHexAddress(address) {
		return ""
	}
	checksum := common.HexToAddress(address).Hex()
	return fmt.Sprintf("%s...%s", checksum[:6], checksum[len(checksum)-4:])
}
