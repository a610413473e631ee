package services

import "strings"

// bibleBook pairs a display name with its OSIS book ID.
type bibleBook struct {
	Name    string
	OSIS    string
	Aliases []string
}

var bibleBooks = []bibleBook{
	{"Genesis", "Gen", nil},
	{"Exodus", "Exod", []string{"exo", "ex"}},
	{"Leviticus", "Lev", nil},
	{"Numbers", "Num", nil},
	{"Deuteronomy", "Deut", []string{"deu"}},
	{"Joshua", "Josh", []string{"jos"}},
	{"Judges", "Judg", []string{"jdg"}},
	{"Ruth", "Ruth", nil},
	{"1 Samuel", "1Sam", nil},
	{"2 Samuel", "2Sam", nil},
	{"1 Kings", "1Kgs", nil},
	{"2 Kings", "2Kgs", nil},
	{"1 Chronicles", "1Chr", nil},
	{"2 Chronicles", "2Chr", nil},
	{"Ezra", "Ezra", []string{"ezr"}},
	{"Nehemiah", "Neh", nil},
	{"Esther", "Esth", []string{"est"}},
	{"Job", "Job", nil},
	{"Psalms", "Ps", []string{"psa", "psalm"}},
	{"Proverbs", "Prov", []string{"pro"}},
	{"Ecclesiastes", "Eccl", []string{"ecc"}},
	{"Song of Solomon", "Song", []string{"songofsongs", "sos", "canticles"}},
	{"Isaiah", "Isa", nil},
	{"Jeremiah", "Jer", nil},
	{"Lamentations", "Lam", nil},
	{"Ezekiel", "Ezek", []string{"eze"}},
	{"Daniel", "Dan", nil},
	{"Hosea", "Hos", nil},
	{"Joel", "Joel", nil},
	{"Amos", "Amos", nil},
	{"Obadiah", "Obad", []string{"oba"}},
	{"Jonah", "Jonah", []string{"jon"}},
	{"Micah", "Mic", nil},
	{"Nahum", "Nah", nil},
	{"Habakkuk", "Hab", nil},
	{"Zephaniah", "Zeph", []string{"zep"}},
	{"Haggai", "Hag", nil},
	{"Zechariah", "Zech", []string{"zec"}},
	{"Malachi", "Mal", nil},
	{"Matthew", "Matt", []string{"mat", "mt"}},
	{"Mark", "Mark", []string{"mrk", "mk"}},
	{"Luke", "Luke", []string{"luk", "lk"}},
	{"John", "John", []string{"joh", "jn"}},
	{"Acts", "Acts", []string{"act"}},
	{"Romans", "Rom", nil},
	{"1 Corinthians", "1Cor", nil},
	{"2 Corinthians", "2Cor", nil},
	{"Galatians", "Gal", nil},
	{"Ephesians", "Eph", nil},
	{"Philippians", "Phil", nil},
	{"Colossians", "Col", nil},
	{"1 Thessalonians", "1Thess", nil},
	{"2 Thessalonians", "2Thess", nil},
	{"1 Timothy", "1Tim", nil},
	{"2 Timothy", "2Tim", nil},
	{"Titus", "Titus", []string{"tit"}},
	{"Philemon", "Phlm", []string{"phm"}},
	{"Hebrews", "Heb", nil},
	{"James", "Jas", nil},
	{"1 Peter", "1Pet", nil},
	{"2 Peter", "2Pet", nil},
	{"1 John", "1John", []string{"1jn"}},
	{"2 John", "2John", []string{"2jn"}},
	{"3 John", "3John", []string{"3jn"}},
	{"Jude", "Jude", nil},
	{"Revelation", "Rev", []string{"revelations"}},
}

var bookIndex = func() map[string]bibleBook {
	idx := make(map[string]bibleBook, len(bibleBooks)*3)
	for _, b := range bibleBooks {
		idx[bookKey(b.Name)] = b
		idx[bookKey(b.OSIS)] = b
		for _, a := range b.Aliases {
			idx[a] = b
		}
	}
	return idx
}()

func bookKey(s string) string {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// lookupBook resolves a book name, OSIS ID or common abbreviation.
func lookupBook(name string) (bibleBook, bool) {
	b, ok := bookIndex[bookKey(name)]
	return b, ok
}
