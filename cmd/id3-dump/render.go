package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/simonhull/id3meta"
	"github.com/simonhull/id3meta/internal/binary"
)

type printer struct {
	w   io.Writer
	cfg config
}

func (p *printer) print(info *id3meta.FileInfo) error {
	if p.cfg.jsonOutput {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	var sb strings.Builder
	p.render(&sb, info)
	_, err := io.WriteString(p.w, sb.String())
	return err
}

func (p *printer) render(sb *strings.Builder, info *id3meta.FileInfo) {
	fmt.Fprintf(sb, "%s (%s)\n", info.Path, size(info.Size))
	fmt.Fprintf(sb, "  audio data: %d-%d (%s)\n", info.AVDataOffset, info.AVDataEnd, size(info.AudioDataSize()))

	if v1 := info.ID3v1; v1 != nil {
		fmt.Fprintf(sb, "  ID3v%s at %d", v1.Version, v1.OffsetStart)
		if v1.Duplicate {
			sb.WriteString(" (duplicate trailer in front)")
		}
		sb.WriteByte('\n')
		field(sb, "Title", v1.Title)
		field(sb, "Artist", v1.Artist)
		field(sb, "Album", v1.Album)
		field(sb, "Year", v1.Year)
		field(sb, "Comment", v1.Comment)
		if v1.Track != nil {
			field(sb, "Track", fmt.Sprint(*v1.Track))
		}
		switch {
		case v1.Genre != "":
			field(sb, "Genre", v1.Genre)
		case v1.GenreID != nil:
			field(sb, "Genre", fmt.Sprintf("(%d)", *v1.GenreID))
		}
	}

	if v2 := info.ID3v2; v2 != nil {
		fmt.Fprintf(sb, "  ID3v2.%d.%d at %d-%d%s\n", v2.MajorVersion, v2.MinorVersion, v2.OffsetStart, v2.OffsetEnd, tagFlags(v2.Flags))
		if v2.FrameVersion != v2.MajorVersion {
			fmt.Fprintf(sb, "    frames read with ID3v2.%d sizes\n", v2.FrameVersion)
		}
		if eh := v2.Extended; eh != nil {
			fmt.Fprintf(sb, "    extended header: %d bytes", eh.Consumed)
			if eh.CRC != nil {
				fmt.Fprintf(sb, ", crc %08x", *eh.CRC)
			}
			if eh.Update {
				sb.WriteString(", update")
			}
			sb.WriteByte('\n')
		}

		if p.cfg.frames {
			for _, f := range v2.Frames {
				p.frame(sb, f)
			}
		} else {
			fmt.Fprintf(sb, "    %d frames\n", len(v2.Frames))
		}

		if pad := v2.Padding; pad != nil {
			fmt.Fprintf(sb, "    padding: %s at %d", size(pad.Length), pad.Start)
			if !pad.Valid {
				fmt.Fprintf(sb, " (non-zero byte at %d)", pad.ErrorOffset)
			}
			sb.WriteByte('\n')
		}
	}

	for _, w := range info.Warnings {
		fmt.Fprintf(sb, "  warning: %s\n", w)
	}
}

func (p *printer) frame(sb *strings.Builder, f id3meta.Frame) {
	fmt.Fprintf(sb, "    %-4s %-24s %8s at %-6d %s\n", f.ID, f.ShortName, size(f.Size), f.Offset, describe(f.Content))

	if p.cfg.hexBytes > 0 && len(f.Data) > 0 {
		head := f.Data[:min(len(f.Data), p.cfg.hexBytes)]
		fmt.Fprintf(sb, "         hex:  %s\n", binary.HexBytes(head, binary.HexOptions{Spaces: true}))
		fmt.Fprintf(sb, "         text: %s\n", binary.HexBytes(head, binary.HexOptions{Text: true, Spaces: true}))
	}
}

// describe renders frame content on one line.
func describe(c id3meta.FrameContent) string {
	switch c := c.(type) {
	case nil:
		return ""
	case *id3meta.TextContent:
		return fmt.Sprintf("%q", strings.Join(c.Values, " / "))
	case *id3meta.UserTextContent:
		return fmt.Sprintf("%s=%q", c.Description, c.Value)
	case *id3meta.URLContent:
		return c.URL
	case *id3meta.UserURLContent:
		return fmt.Sprintf("%s=%s", c.Description, c.URL)
	case *id3meta.CommentContent:
		return fmt.Sprintf("[%s] %s: %q", c.Language, c.Description, c.Text)
	case *id3meta.UniqueIDContent:
		return fmt.Sprintf("%s: %x", c.Owner, c.Identifier)
	case *id3meta.CounterContent:
		return fmt.Sprintf("%d plays", c.Count)
	case *id3meta.PopularimeterContent:
		return fmt.Sprintf("%s rated %d/255, %d plays", c.Email, c.Rating, c.Count)
	case *id3meta.PictureContent:
		return fmt.Sprintf("%s %q (%s)", c.MIMEType, c.Description, size(int64(len(c.Data))))
	default:
		return c.Kind()
	}
}

func tagFlags(f id3meta.TagFlags) string {
	var set []string
	if f.Unsynchronised {
		set = append(set, "unsynchronised")
	}
	if f.Compressed {
		set = append(set, "compressed")
	}
	if f.ExtendedHeader {
		set = append(set, "extended header")
	}
	if f.Experimental {
		set = append(set, "experimental")
	}
	if f.Footer {
		set = append(set, "footer")
	}
	if len(set) == 0 {
		return ""
	}
	return " [" + strings.Join(set, ", ") + "]"
}

func field(sb *strings.Builder, name, value string) {
	if value != "" {
		fmt.Fprintf(sb, "    %-8s %s\n", name+":", value)
	}
}

func size(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
