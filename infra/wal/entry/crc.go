package entry

import "hash/crc32"

func crc32Sum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
