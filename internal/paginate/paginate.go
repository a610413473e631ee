// Package paginate groups text units into slide-sized chunks.
package paginate

import "service-slides/internal/content"

// Paginate greedily groups units into chunks in source order.
//
// A chunk is closed when unitCountMax units have been added since the last
// close, when the input is exhausted, or when the chunk's newline count
// reaches newlineCountMax. A unit is never split, so a single long verse
// may exceed the newline budget on its own.
func Paginate(units []content.TextUnit, unitCountMax, newlineCountMax int) []content.Chunk {
	return paginate("", units, unitCountMax, newlineCountMax)
}

// PaginateSection paginates a section's units and labels every chunk with the section name.
func PaginateSection(section content.Section, unitCountMax, newlineCountMax int) []content.Chunk {
	return paginate(section.Name, section.Units, unitCountMax, newlineCountMax)
}

// PaginateTexts is a convenience wrapper for raw strings such as verses.
func PaginateTexts(texts []string, unitCountMax, newlineCountMax int) []content.Chunk {
	return Paginate(content.NewUnits(texts), unitCountMax, newlineCountMax)
}

func paginate(name string, units []content.TextUnit, unitCountMax, newlineCountMax int) []content.Chunk {
	if unitCountMax < 1 {
		unitCountMax = 1
	}
	if newlineCountMax < 0 {
		newlineCountMax = 0
	}

	chunks := make([]content.Chunk, 0, len(units)/unitCountMax+1)
	current := content.Chunk{Section: name}
	counter := 0
	remaining := len(units)

	for _, u := range units {
		current.Units = append(current.Units, u)
		current.LineCount += u.Lines()

		counter = (counter + 1) % unitCountMax
		remaining--

		if counter == 0 || remaining <= 0 || current.LineCount >= newlineCountMax {
			if len(current.Units) > 0 {
				chunks = append(chunks, current)
			}
			current = content.Chunk{Section: name}
			counter = 0
		}
	}

	return chunks
}
