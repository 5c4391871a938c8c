// Command id3dump prints the ID3 metadata of MP3 and MP4 files.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ogmaresca/id3"
)

func printFile(name string) {
	fmt.Println(name)

	f, err := os.Open(name)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var tag *id3.Tag
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp4", ".m4a", ".m4b":
		tag, err = id3.DecodeMP4(f)
	default:
		var ok bool
		ok, err = id3.Check(f)
		if err == nil && !ok {
			log.Println("no ID3v2 tag")
			return
		}
		if err == nil {
			tag, err = id3.NewDecoder(f).Parse()
		}
	}
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, frame := range tag.Frames() {
		if frame.Null() {
			continue
		}
		switch frame := frame.(type) {
		case *id3.PictureFrame:
			fmt.Printf("%s: %s, %s\n", frame.ID(),
				frame.Value(), humanize.Bytes(uint64(len(frame.Picture()))))
		case *id3.DescriptiveTextFrame:
			fmt.Printf("%s: %s: %s\n", frame.ID(), frame.Description(), frame.Content())
		default:
			fmt.Printf("%s: %s\n", frame.ID(), frame.Value())
		}
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s file...\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}
	for _, name := range os.Args[1:] {
		printFile(name)
		fmt.Println()
	}
}
