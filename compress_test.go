package snappy

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	rng := rand.New(rand.NewSource(1))
	random := make([]byte, 100000)
	rng.Read(random)

	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, snappy test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "multi-block-pattern", data: bytes.Repeat([]byte("ABCDEF0123456789"), 8192)},
		{name: "incompressible-100k", data: random},
	}
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := Compress(in.data, nil)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if len(cmp) < 1 {
				t.Fatal("compressed block has no length prefix")
			}

			out, err := Decompress(cmp, nil)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(out, in.data) {
				t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
			}

			dst := make([]byte, len(in.data)+128)
			outInto, err := DecompressInto(cmp, dst)
			if err != nil {
				t.Fatalf("DecompressInto failed: %v", err)
			}
			if !bytes.Equal(outInto, in.data) {
				t.Fatalf("DecompressInto round-trip mismatch: got=%d want=%d", len(outInto), len(in.data))
			}

			outReader, err := DecompressFromReader(bytes.NewReader(cmp), nil)
			if err != nil {
				t.Fatalf("DecompressFromReader failed: %v", err)
			}
			if !bytes.Equal(outReader, in.data) {
				t.Fatalf("reader round-trip mismatch: got=%d want=%d", len(outReader), len(in.data))
			}
		})
	}
}

func TestCompress_ExpansionBound(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := Compress(in.data, nil)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}

			if bound := MaxCompressedLength(len(in.data)); len(cmp) > bound {
				t.Fatalf("compressed size %d exceeds bound %d", len(cmp), bound)
			}
		})
	}
}

func TestCompress_Deterministic(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			first, err := Compress(in.data, nil)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}

			mem := AcquireWorkingMemory()
			defer ReleaseWorkingMemory(mem)

			for i := 0; i < 3; i++ {
				again, err := Compress(in.data, &CompressOptions{Memory: mem})
				if err != nil {
					t.Fatalf("Compress (reused memory, run %d) failed: %v", i, err)
				}
				if !bytes.Equal(first, again) {
					t.Fatalf("non-deterministic output on run %d", i)
				}
			}
		})
	}
}

func TestCompressInto_DstContract(t *testing.T) {
	data := bytes.Repeat([]byte("compress-into"), 512)

	dst := make([]byte, MaxCompressedLength(len(data)))
	out, err := CompressInto(data, dst, nil)
	if err != nil {
		t.Fatalf("CompressInto failed: %v", err)
	}

	rt, err := Decompress(out, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(rt, data) {
		t.Fatal("CompressInto round-trip mismatch")
	}

	_, err = CompressInto(data, dst[:len(dst)-1], nil)
	if !errors.Is(err, ErrDstTooSmall) {
		t.Fatalf("expected ErrDstTooSmall, got %v", err)
	}
}

func TestCompressToWriter_MatchesCompress(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			want, err := Compress(in.data, nil)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}

			var buf bytes.Buffer
			n, err := CompressToWriter(&buf, in.data, nil)
			if err != nil {
				t.Fatalf("CompressToWriter failed: %v", err)
			}

			if n != buf.Len() {
				t.Fatalf("written count mismatch: returned %d, buffered %d", n, buf.Len())
			}
			if !bytes.Equal(buf.Bytes(), want) {
				t.Fatal("streamed output differs from Compress")
			}
		})
	}
}

type failingWriter struct {
	n   int // writes accepted before failing
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	w.n--

	return len(p), nil
}

func TestCompressToWriter_WriterError(t *testing.T) {
	data := bytes.Repeat([]byte("writer-error"), 4096)
	wantErr := errors.New("boom")

	for _, accepted := range []int{0, 1} {
		w := &failingWriter{n: accepted, err: wantErr}
		if _, err := CompressToWriter(w, data, nil); !errors.Is(err, wantErr) {
			t.Fatalf("accepted=%d: expected writer error, got %v", accepted, err)
		}
	}
}

func TestCompress_InputSpanningManyBlocks(t *testing.T) {
	// Three full blocks plus a tail; block boundaries must not leak matches.
	data := bytes.Repeat([]byte("0123456789abcdef"), (3*maxBlockSize+1000)/16)

	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	out, err := Decompress(cmp, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("multi-block round-trip mismatch")
	}
}

func TestMaxCompressedLength(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 32},
		{1, 33},
		{6, 39},
		{maxBlockSize, 32 + maxBlockSize + maxBlockSize/6},
		{1 << 20, 32 + 1<<20 + (1<<20)/6},
	}

	for _, tc := range cases {
		if got := MaxCompressedLength(tc.in); got != tc.want {
			t.Errorf("MaxCompressedLength(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}

	if got := MaxCompressedLength(-1); got != -1 {
		t.Errorf("MaxCompressedLength(-1) = %d, want -1", got)
	}
}

func TestCompress_RandomDataRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		n := rng.Intn(1 << 16)
		data := make([]byte, n)

		// Mix compressible and incompressible segments.
		for pos := 0; pos < n; {
			runLen := 1 + rng.Intn(64)
			runLen = min(runLen, n-pos)

			if rng.Intn(2) == 0 {
				b := byte(rng.Intn(256))
				for j := 0; j < runLen; j++ {
					data[pos+j] = b
				}
			} else {
				rng.Read(data[pos : pos+runLen])
			}

			pos += runLen
		}

		cmp, err := Compress(data, nil)
		if err != nil {
			t.Fatalf("iteration %d: Compress failed: %v", i, err)
		}

		out, err := Decompress(cmp, nil)
		if err != nil {
			t.Fatalf("iteration %d: Decompress failed: %v", i, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("iteration %d: round-trip mismatch for %d bytes", i, n)
		}
	}
}

func TestCompress_PoolAndCallerMemoryAgree(t *testing.T) {
	data := bytes.Repeat([]byte("pool-vs-caller"), 3000)

	pooled, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress (pooled) failed: %v", err)
	}

	mem := AcquireWorkingMemory()
	defer ReleaseWorkingMemory(mem)

	owned, err := Compress(data, &CompressOptions{Memory: mem})
	if err != nil {
		t.Fatalf("Compress (caller memory) failed: %v", err)
	}

	if !bytes.Equal(pooled, owned) {
		t.Fatal("pooled and caller-owned working memory produced different output")
	}
}

func ExampleCompress() {
	data := bytes.Repeat([]byte("an example payload "), 100)

	compressed, _ := Compress(data, nil)
	restored, _ := Decompress(compressed, nil)

	fmt.Println(bytes.Equal(restored, data), len(compressed) < len(data))
	// Output: true true
}
