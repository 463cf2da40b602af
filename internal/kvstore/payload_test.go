package kvstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PayloadTestSuite struct {
	suite.Suite
}

func TestPayloadTestSuite(t *testing.T) {
	suite.Run(t, new(PayloadTestSuite))
}

func (s *PayloadTestSuite) decode(raw string) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal([]byte(raw), &out))
	return out
}

func (s *PayloadTestSuite) TestAsInt64() {
	fields := s.decode(`{"n": 1712000000123, "f": 25.9, "s": "25", "z": null}`)

	n, ok := AsInt64(fields["n"])
	s.True(ok)
	s.Equal(int64(1712000000123), n)

	f, ok := AsInt(fields["f"])
	s.True(ok)
	s.Equal(25, f)

	_, ok = AsInt64(fields["s"])
	s.False(ok)

	_, ok = AsInt64(fields["z"])
	s.False(ok)

	_, ok = AsInt64(fields["missing"])
	s.False(ok)
}

func (s *PayloadTestSuite) TestTruthy() {
	fields := s.decode(`{"t": true, "f": false, "one": 1, "zero": 0, "str": "yes", "empty": "", "obj": {}, "arr": [], "nil": null}`)

	s.True(Truthy(fields["t"]))
	s.False(Truthy(fields["f"]))
	s.True(Truthy(fields["one"]))
	s.False(Truthy(fields["zero"]))
	s.True(Truthy(fields["str"]))
	s.False(Truthy(fields["empty"]))
	s.True(Truthy(fields["obj"]))
	s.True(Truthy(fields["arr"]))
	s.False(Truthy(fields["nil"]))
	s.False(Truthy(fields["missing"]))
}

func (s *PayloadTestSuite) TestKey() {
	s.Equal("flowly:session:alice", Key("", "session", "alice"))
	s.Equal("test:weekly_summary:bob@example.com", Key("test", "weekly_summary", "bob@example.com"))
}

func (s *PayloadTestSuite) TestAsText() {
	fields := s.decode(`{"s": "abc", "n": 1712000000123, "f": 2.5, "b": true, "nil": null, "obj": {}}`)

	s.Equal("abc", AsText(fields["s"]))
	s.Equal("1712000000123", AsText(fields["n"]))
	s.Equal("2.5", AsText(fields["f"]))
	s.Equal("true", AsText(fields["b"]))
	s.Equal("", AsText(fields["nil"]))
	s.Equal("", AsText(fields["obj"]))
}
