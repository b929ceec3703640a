package diglib

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/suite"
)

type EmitterTestSuite struct {
	suite.Suite

	stdout *bytes.Buffer
	stderr *bytes.Buffer
	e      *emitter
}

func (suite *EmitterTestSuite) SetupTest() {
	suite.stdout = &bytes.Buffer{}
	suite.stderr = &bytes.Buffer{}
	suite.e = newEmitter(suite.stdout, suite.stderr, 3)
}

func (suite *EmitterTestSuite) TestInOrder() {
	suite.e.Done(0, outcome{target: "a", result: GeoResult{Body: []byte("1")}})
	suite.Equal("1\n", suite.stdout.String())

	suite.e.Done(1, outcome{target: "b", result: GeoResult{Body: []byte("2\n")}})
	suite.Equal("1\n2\n", suite.stdout.String())
}

func (suite *EmitterTestSuite) TestOutOfOrder() {
	suite.e.Done(2, outcome{target: "c", result: GeoResult{Body: []byte("3")}})
	suite.Empty(suite.stdout.String())

	suite.e.Done(1, outcome{target: "b", err: &NetworkError{IP: "b", Err: io.EOF}})
	suite.Empty(suite.stdout.String())
	suite.Empty(suite.stderr.String())

	suite.e.Done(0, outcome{target: "a", result: GeoResult{Body: []byte("1")}})
	suite.Equal("1\n3\n", suite.stdout.String())
	suite.Equal("diggeo: b: network error: cannot reach geolocation service: EOF\n",
		suite.stderr.String())
}

func (suite *EmitterTestSuite) TestBodyIsNotModified() {
	body := []byte(`{"ip": "8.8.8.8"}`)

	suite.e.Done(0, outcome{target: "a", result: GeoResult{Body: body}})

	suite.Equal(`{"ip": "8.8.8.8"}`, string(body))
	suite.Equal(`{"ip": "8.8.8.8"}`+"\n", suite.stdout.String())
}

func TestEmitter(t *testing.T) {
	suite.Run(t, &EmitterTestSuite{})
}
