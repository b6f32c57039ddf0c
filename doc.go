// Package id3meta reads ID3v1 and ID3v2 tags from audio files.
//
// id3meta decodes the 128-byte ID3v1/ID3v1.1 trailer at the end of a file
// and the ID3v2.2, ID3v2.3 or ID3v2.4 tag at its start, and reports the byte
// range left over for audio data.
//
// # Quick Start
//
//	info, err := id3meta.Analyze("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if info.ID3v1 != nil {
//		fmt.Printf("%s - %s\n", info.ID3v1.Artist, info.ID3v1.Title)
//	}
//	if info.ID3v2 != nil {
//		for _, f := range info.ID3v2.Frames {
//			fmt.Printf("%s (%s): %v\n", f.ID, f.LongName, f.Content)
//		}
//	}
//	fmt.Printf("audio: %d bytes\n", info.AudioDataSize())
//
// # Frames
//
// Every ID3v2 frame keeps its identifier, flags, offset and raw payload.
// Frames with a registered decoder also carry a FrameContent value: text
// frames decode to *TextContent, comments to *CommentContent, pictures to
// *PictureContent and so on. Custom decoders plug in through a Registry:
//
//	reg := id3meta.DefaultRegistry().Clone()
//	reg.Register(id3meta.FrameDecoderFunc(decodePrivate), "PRIV")
//	info, err := id3meta.Analyze("song.mp3", id3meta.WithRegistry(reg))
//
// # Error Handling
//
// Fatal errors stop analysis:
//
//   - *SourceUnavailableError: the file cannot be opened
//   - *UnsupportedSourceError: the path names a remote resource
//   - *UnsupportedVersionError: the ID3v2 major version is above 4
//
// A file without tags is not an error. Malformed padding, invalid frame
// identifiers, corrupt frame sizes and undecodable payloads are collected
// as warnings:
//
//	for _, w := range info.Warnings {
//		log.Printf("warning: %s", w)
//	}
//
// WithStrictParsing turns the first warning into a *CorruptedTagError.
//
// # Concurrency
//
// A single analysis is sequential. AnalyzeMany analyses independent files
// in parallel; the genre and frame name tables and the default registry are
// safe for concurrent use.
package id3meta
