package books

// canon contains all 66 canonical books in canonical order. The alias lists
// cover full names, common abbreviations, and numbered-book variants so that
// user-facing routes accept e.g. "genesis", "gn" or "1cor" interchangeably.
var canon = []BookInfo{
	// Old Testament
	{ID: "gen", Number: 1, Testament: TestamentOld, ChapterCount: 50,
		Names:   map[string]string{"en": "Genesis", "fr": "Genèse"},
		Aliases: []string{"genesis", "gn", "ge"}},
	{ID: "exo", Number: 2, Testament: TestamentOld, ChapterCount: 40,
		Names:   map[string]string{"en": "Exodus", "fr": "Exode"},
		Aliases: []string{"exodus", "ex", "exod"}},
	{ID: "lev", Number: 3, Testament: TestamentOld, ChapterCount: 27,
		Names:   map[string]string{"en": "Leviticus", "fr": "Lévitique"},
		Aliases: []string{"leviticus", "lv"}},
	{ID: "num", Number: 4, Testament: TestamentOld, ChapterCount: 36,
		Names:   map[string]string{"en": "Numbers", "fr": "Nombres"},
		Aliases: []string{"numbers", "nm", "nb"}},
	{ID: "deu", Number: 5, Testament: TestamentOld, ChapterCount: 34,
		Names:   map[string]string{"en": "Deuteronomy", "fr": "Deutéronome"},
		Aliases: []string{"deuteronomy", "deut", "dt"}},
	{ID: "jos", Number: 6, Testament: TestamentOld, ChapterCount: 24,
		Names:   map[string]string{"en": "Joshua", "fr": "Josué"},
		Aliases: []string{"joshua", "josh"}},
	{ID: "jdg", Number: 7, Testament: TestamentOld, ChapterCount: 21,
		Names:   map[string]string{"en": "Judges", "fr": "Juges"},
		Aliases: []string{"judges", "judg", "jg"}},
	{ID: "rut", Number: 8, Testament: TestamentOld, ChapterCount: 4,
		Names:   map[string]string{"en": "Ruth", "fr": "Ruth"},
		Aliases: []string{"ruth", "ru"}},
	{ID: "1sa", Number: 9, Testament: TestamentOld, ChapterCount: 31,
		Names:   map[string]string{"en": "1 Samuel", "fr": "1 Samuel"},
		Aliases: []string{"1samuel", "1sam", "1sm"}},
	{ID: "2sa", Number: 10, Testament: TestamentOld, ChapterCount: 24,
		Names:   map[string]string{"en": "2 Samuel", "fr": "2 Samuel"},
		Aliases: []string{"2samuel", "2sam", "2sm"}},
	{ID: "1ki", Number: 11, Testament: TestamentOld, ChapterCount: 22,
		Names:   map[string]string{"en": "1 Kings", "fr": "1 Rois"},
		Aliases: []string{"1kings", "1kgs", "1kg"}},
	{ID: "2ki", Number: 12, Testament: TestamentOld, ChapterCount: 25,
		Names:   map[string]string{"en": "2 Kings", "fr": "2 Rois"},
		Aliases: []string{"2kings", "2kgs", "2kg"}},
	{ID: "1ch", Number: 13, Testament: TestamentOld, ChapterCount: 29,
		Names:   map[string]string{"en": "1 Chronicles", "fr": "1 Chroniques"},
		Aliases: []string{"1chronicles", "1chron", "1chr"}},
	{ID: "2ch", Number: 14, Testament: TestamentOld, ChapterCount: 36,
		Names:   map[string]string{"en": "2 Chronicles", "fr": "2 Chroniques"},
		Aliases: []string{"2chronicles", "2chron", "2chr"}},
	{ID: "ezr", Number: 15, Testament: TestamentOld, ChapterCount: 10,
		Names:   map[string]string{"en": "Ezra", "fr": "Esdras"},
		Aliases: []string{"ezra"}},
	{ID: "neh", Number: 16, Testament: TestamentOld, ChapterCount: 13,
		Names:   map[string]string{"en": "Nehemiah", "fr": "Néhémie"},
		Aliases: []string{"nehemiah", "ne"}},
	{ID: "est", Number: 17, Testament: TestamentOld, ChapterCount: 10,
		Names:   map[string]string{"en": "Esther", "fr": "Esther"},
		Aliases: []string{"esther", "esth"}},
	{ID: "job", Number: 18, Testament: TestamentOld, ChapterCount: 42,
		Names:   map[string]string{"en": "Job", "fr": "Job"},
		Aliases: []string{"jb"}},
	{ID: "psa", Number: 19, Testament: TestamentOld, ChapterCount: 150,
		Names:   map[string]string{"en": "Psalms", "fr": "Psaumes"},
		Aliases: []string{"psalms", "psalm", "pss", "ps"}},
	{ID: "pro", Number: 20, Testament: TestamentOld, ChapterCount: 31,
		Names:   map[string]string{"en": "Proverbs", "fr": "Proverbes"},
		Aliases: []string{"proverbs", "prov", "prv"}},
	{ID: "ecc", Number: 21, Testament: TestamentOld, ChapterCount: 12,
		Names:   map[string]string{"en": "Ecclesiastes", "fr": "Ecclésiaste"},
		Aliases: []string{"ecclesiastes", "eccl", "qoh"}},
	{ID: "sng", Number: 22, Testament: TestamentOld, ChapterCount: 8,
		Names:   map[string]string{"en": "Song of Solomon", "fr": "Cantique des Cantiques"},
		Aliases: []string{"songofsolomon", "song", "sos"}},
	{ID: "isa", Number: 23, Testament: TestamentOld, ChapterCount: 66,
		Names:   map[string]string{"en": "Isaiah", "fr": "Ésaïe"},
		Aliases: []string{"isaiah", "is"}},
	{ID: "jer", Number: 24, Testament: TestamentOld, ChapterCount: 52,
		Names:   map[string]string{"en": "Jeremiah", "fr": "Jérémie"},
		Aliases: []string{"jeremiah", "jr"}},
	{ID: "lam", Number: 25, Testament: TestamentOld, ChapterCount: 5,
		Names:   map[string]string{"en": "Lamentations", "fr": "Lamentations"},
		Aliases: []string{"lamentations", "la"}},
	{ID: "ezk", Number: 26, Testament: TestamentOld, ChapterCount: 48,
		Names:   map[string]string{"en": "Ezekiel", "fr": "Ézéchiel"},
		Aliases: []string{"ezekiel", "eze", "ezek"}},
	{ID: "dan", Number: 27, Testament: TestamentOld, ChapterCount: 12,
		Names:   map[string]string{"en": "Daniel", "fr": "Daniel"},
		Aliases: []string{"daniel", "dn"}},
	{ID: "hos", Number: 28, Testament: TestamentOld, ChapterCount: 14,
		Names:   map[string]string{"en": "Hosea", "fr": "Osée"},
		Aliases: []string{"hosea", "ho"}},
	{ID: "jol", Number: 29, Testament: TestamentOld, ChapterCount: 3,
		Names:   map[string]string{"en": "Joel", "fr": "Joël"},
		Aliases: []string{"joel", "jl"}},
	{ID: "amo", Number: 30, Testament: TestamentOld, ChapterCount: 9,
		Names:   map[string]string{"en": "Amos", "fr": "Amos"},
		Aliases: []string{"amos", "am"}},
	{ID: "oba", Number: 31, Testament: TestamentOld, ChapterCount: 1,
		Names:   map[string]string{"en": "Obadiah", "fr": "Abdias"},
		Aliases: []string{"obadiah", "obad", "ob"}},
	{ID: "jon", Number: 32, Testament: TestamentOld, ChapterCount: 4,
		Names:   map[string]string{"en": "Jonah", "fr": "Jonas"},
		Aliases: []string{"jonah", "jnh"}},
	{ID: "mic", Number: 33, Testament: TestamentOld, ChapterCount: 7,
		Names:   map[string]string{"en": "Micah", "fr": "Michée"},
		Aliases: []string{"micah", "mc"}},
	{ID: "nam", Number: 34, Testament: TestamentOld, ChapterCount: 3,
		Names:   map[string]string{"en": "Nahum", "fr": "Nahum"},
		Aliases: []string{"nahum", "nah", "na"}},
	{ID: "hab", Number: 35, Testament: TestamentOld, ChapterCount: 3,
		Names:   map[string]string{"en": "Habakkuk", "fr": "Habacuc"},
		Aliases: []string{"habakkuk", "hb"}},
	{ID: "zep", Number: 36, Testament: TestamentOld, ChapterCount: 3,
		Names:   map[string]string{"en": "Zephaniah", "fr": "Sophonie"},
		Aliases: []string{"zephaniah", "zeph", "zp"}},
	{ID: "hag", Number: 37, Testament: TestamentOld, ChapterCount: 2,
		Names:   map[string]string{"en": "Haggai", "fr": "Aggée"},
		Aliases: []string{"haggai", "hg"}},
	{ID: "zec", Number: 38, Testament: TestamentOld, ChapterCount: 14,
		Names:   map[string]string{"en": "Zechariah", "fr": "Zacharie"},
		Aliases: []string{"zechariah", "zech", "zc"}},
	{ID: "mal", Number: 39, Testament: TestamentOld, ChapterCount: 4,
		Names:   map[string]string{"en": "Malachi", "fr": "Malachie"},
		Aliases: []string{"malachi", "ml"}},
	// New Testament
	{ID: "mat", Number: 40, Testament: TestamentNew, ChapterCount: 28,
		Names:   map[string]string{"en": "Matthew", "fr": "Matthieu"},
		Aliases: []string{"matthew", "matt", "mt"}},
	{ID: "mrk", Number: 41, Testament: TestamentNew, ChapterCount: 16,
		Names:   map[string]string{"en": "Mark", "fr": "Marc"},
		Aliases: []string{"mark", "mk"}},
	{ID: "luk", Number: 42, Testament: TestamentNew, ChapterCount: 24,
		Names:   map[string]string{"en": "Luke", "fr": "Luc"},
		Aliases: []string{"luke", "lk"}},
	{ID: "jhn", Number: 43, Testament: TestamentNew, ChapterCount: 21,
		Names:   map[string]string{"en": "John", "fr": "Jean"},
		Aliases: []string{"john", "jn"}},
	{ID: "act", Number: 44, Testament: TestamentNew, ChapterCount: 28,
		Names:   map[string]string{"en": "Acts", "fr": "Actes"},
		Aliases: []string{"acts", "ac"}},
	{ID: "rom", Number: 45, Testament: TestamentNew, ChapterCount: 16,
		Names:   map[string]string{"en": "Romans", "fr": "Romains"},
		Aliases: []string{"romans", "rm", "ro"}},
	{ID: "1co", Number: 46, Testament: TestamentNew, ChapterCount: 16,
		Names:   map[string]string{"en": "1 Corinthians", "fr": "1 Corinthiens"},
		Aliases: []string{"1corinthians", "1cor"}},
	{ID: "2co", Number: 47, Testament: TestamentNew, ChapterCount: 13,
		Names:   map[string]string{"en": "2 Corinthians", "fr": "2 Corinthiens"},
		Aliases: []string{"2corinthians", "2cor"}},
	{ID: "gal", Number: 48, Testament: TestamentNew, ChapterCount: 6,
		Names:   map[string]string{"en": "Galatians", "fr": "Galates"},
		Aliases: []string{"galatians", "ga"}},
	{ID: "eph", Number: 49, Testament: TestamentNew, ChapterCount: 6,
		Names:   map[string]string{"en": "Ephesians", "fr": "Éphésiens"},
		Aliases: []string{"ephesians", "ep"}},
	{ID: "php", Number: 50, Testament: TestamentNew, ChapterCount: 4,
		Names:   map[string]string{"en": "Philippians", "fr": "Philippiens"},
		Aliases: []string{"philippians", "phil", "pp"}},
	{ID: "col", Number: 51, Testament: TestamentNew, ChapterCount: 4,
		Names:   map[string]string{"en": "Colossians", "fr": "Colossiens"},
		Aliases: []string{"colossians", "co"}},
	{ID: "1th", Number: 52, Testament: TestamentNew, ChapterCount: 5,
		Names:   map[string]string{"en": "1 Thessalonians", "fr": "1 Thessaloniciens"},
		Aliases: []string{"1thessalonians", "1thess", "1thes"}},
	{ID: "2th", Number: 53, Testament: TestamentNew, ChapterCount: 3,
		Names:   map[string]string{"en": "2 Thessalonians", "fr": "2 Thessaloniciens"},
		Aliases: []string{"2thessalonians", "2thess", "2thes"}},
	{ID: "1ti", Number: 54, Testament: TestamentNew, ChapterCount: 6,
		Names:   map[string]string{"en": "1 Timothy", "fr": "1 Timothée"},
		Aliases: []string{"1timothy", "1tim"}},
	{ID: "2ti", Number: 55, Testament: TestamentNew, ChapterCount: 4,
		Names:   map[string]string{"en": "2 Timothy", "fr": "2 Timothée"},
		Aliases: []string{"2timothy", "2tim"}},
	{ID: "tit", Number: 56, Testament: TestamentNew, ChapterCount: 3,
		Names:   map[string]string{"en": "Titus", "fr": "Tite"},
		Aliases: []string{"titus", "ti"}},
	{ID: "phm", Number: 57, Testament: TestamentNew, ChapterCount: 1,
		Names:   map[string]string{"en": "Philemon", "fr": "Philémon"},
		Aliases: []string{"philemon", "phlm", "pm"}},
	{ID: "heb", Number: 58, Testament: TestamentNew, ChapterCount: 13,
		Names:   map[string]string{"en": "Hebrews", "fr": "Hébreux"},
		Aliases: []string{"hebrews", "he"}},
	{ID: "jas", Number: 59, Testament: TestamentNew, ChapterCount: 5,
		Names:   map[string]string{"en": "James", "fr": "Jacques"},
		Aliases: []string{"james", "jm"}},
	{ID: "1pe", Number: 60, Testament: TestamentNew, ChapterCount: 5,
		Names:   map[string]string{"en": "1 Peter", "fr": "1 Pierre"},
		Aliases: []string{"1peter", "1pet", "1pt"}},
	{ID: "2pe", Number: 61, Testament: TestamentNew, ChapterCount: 3,
		Names:   map[string]string{"en": "2 Peter", "fr": "2 Pierre"},
		Aliases: []string{"2peter", "2pet", "2pt"}},
	{ID: "1jn", Number: 62, Testament: TestamentNew, ChapterCount: 5,
		Names:   map[string]string{"en": "1 John", "fr": "1 Jean"},
		Aliases: []string{"1john", "1jhn"}},
	{ID: "2jn", Number: 63, Testament: TestamentNew, ChapterCount: 1,
		Names:   map[string]string{"en": "2 John", "fr": "2 Jean"},
		Aliases: []string{"2john", "2jhn"}},
	{ID: "3jn", Number: 64, Testament: TestamentNew, ChapterCount: 1,
		Names:   map[string]string{"en": "3 John", "fr": "3 Jean"},
		Aliases: []string{"3john", "3jhn"}},
	{ID: "jud", Number: 65, Testament: TestamentNew, ChapterCount: 1,
		Names:   map[string]string{"en": "Jude", "fr": "Jude"},
		Aliases: []string{"jude"}},
	{ID: "rev", Number: 66, Testament: TestamentNew, ChapterCount: 22,
		Names:   map[string]string{"en": "Revelation", "fr": "Apocalypse"},
		Aliases: []string{"revelation", "rv", "apocalypse"}},
}
