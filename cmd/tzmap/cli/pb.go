// Copyright 2017 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"
	"io"
	"os"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// progressBar reads through a delegate while advancing a ProgressBar.
// Closing it closes the delegate and clears the progress line.
type progressBar struct {
	r   io.ReadCloser
	bar *pb.ProgressBar
	out io.Writer
}

// WrapInputFile tracks the bytes read from f against its size on a progress
// bar drawn to out. The bar counts the bytes on disk, so compressed inputs
// progress by their compressed size.
func WrapInputFile(f *os.File, out io.Writer) (io.ReadCloser, error) {
	if f == os.Stdin {
		return os.Stdin, nil
	}

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	bar := pb.New64(fi.Size()).SetUnits(pb.U_BYTES_DEC).SetWidth(79)
	bar.Output = out
	bar.Prefix("loading ")
	bar.Start()

	return &progressBar{
		r:   bar.NewProxyReader(f),
		bar: bar,
		out: out,
	}, nil
}

func (p *progressBar) Read(b []byte) (int, error) {
	return p.r.Read(b)
}

func (p *progressBar) Close() error {
	// keep Finish() from printing a newline
	p.bar.Output = nil
	p.bar.NotPrint = true

	p.bar.Finish()

	fmt.Fprint(p.out, "\033[2K\r")

	return p.r.Close()
}
