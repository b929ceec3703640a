package diglib

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
)

type outcome struct {
	target string
	result GeoResult
	err    error
}

// emitter writes outcomes in the order of their indexes. Outcomes can
// arrive in any order; whenever a contiguous prefix is complete, it is
// flushed. One outcome is written with a single Write call so lines of
// different targets never interleave.
type emitter struct {
	mutex    sync.Mutex
	stdout   io.Writer
	stderr   io.Writer
	outcomes []*outcome
	next     int
}

func (e *emitter) Done(index int, o outcome) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.outcomes[index] = &o

	for e.next < len(e.outcomes) && e.outcomes[e.next] != nil {
		e.write(e.outcomes[e.next])
		e.outcomes[e.next] = nil
		e.next++
	}
}

func (e *emitter) write(o *outcome) {
	if o.err != nil {
		msg := fmt.Sprintf("diggeo: %s: %s: %s\n",
			o.target,
			ErrorKind(o.err),
			strings.TrimSpace(o.err.Error()))

		io.WriteString(e.stderr, msg) // nolint: errcheck

		return
	}

	body := o.result.Body

	if !bytes.HasSuffix(body, []byte{'\n'}) {
		body = append(body[:len(body):len(body)], '\n')
	}

	e.stdout.Write(body) // nolint: errcheck
}

func newEmitter(stdout, stderr io.Writer, size int) *emitter {
	return &emitter{
		stdout:   stdout,
		stderr:   stderr,
		outcomes: make([]*outcome, size),
	}
}
