package message

import (
	"github.com/gorustyt/gocrowd/common"
	"google.golang.org/protobuf/proto"
)

func Encode(msg proto.Message) ([]byte, error) {
	return proto.Marshal(msg)
}

func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

func MustEncode(msg proto.Message) (data []byte) {
	data, err := proto.Marshal(msg)
	common.AssertTrue(err == nil, "message: encode %T: %v", msg, err)
	return data
}
