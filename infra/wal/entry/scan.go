package entry

import (
	"encoding/binary"
	"io"
	"os"
)

// maxSeqInSegment returns the highest sequence in a segment by walking the
// frame headers without reading payloads.
func maxSeqInSegment(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var maxSeq uint64
	header := make([]byte, headerSize)
	for {
		if _, err := io.ReadFull(f, header); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return maxSeq, nil
			}
			return maxSeq, err
		}

		maxSeq = max(maxSeq, binary.BigEndian.Uint64(header[1:9]))

		payloadLen := binary.BigEndian.Uint32(header[17:21])
		if _, err := f.Seek(int64(payloadLen)+4, io.SeekCurrent); err != nil {
			return maxSeq, err
		}
	}
}
