package lang

import "github.com/vadimfedulov035/cyrillify/internal/rules"

var Thai = &Language{
	Code:     "th",
	Name:     "Тайский",
	English:  "Thai",
	Entries:  thaiRules,
	Examples: thaiExamples,
}

var thaiRules = []rules.Entry{
	{"A", "А"}, {"B", "Б"}, {"C", "К"}, {"D", "Д"},
	{"E", "Е"}, {"F", "Ф"}, {"G", "Г"}, {"H", "Х"},
	{"I", "И"}, {"J", "Ч"}, {"K", "К"}, {"L", "Л"},
	{"M", "М"}, {"N", "Н"}, {"O", "О"}, {"P", "П"},
	{"Q", "КВ"}, {"R", "Р"}, {"S", "С"}, {"T", "Т"},
	{"U", "У"}, {"V", "В"}, {"W", "В"}, {"X", "КС"},
	{"Y", "Й"}, {"Z", "З"},

	// Vowel clusters
	{"AE", "Э"}, {"AEO", "ЭУ"}, {"AI", "АЙ"}, {"AO", "АУ"},
	{"IA", "ИА"}, {"IAO", "ИО"}, {"IU", "ИУ"}, {"OE", "Е"},
	{"OEI", "ЕЙ"}, {"OI", "ОЙ"}, {"UA", "УА"}, {"UAI", "УАЙ"},
	{"UE", "Ы"}, {"UEA", "ЫА"},

	{"CH", "Ч"}, {"ÇH", "Ч"},
}

var thaiExamples = []Example{
	{"Bangkok", "Бангкок"},
	{"Phuket", "Пхукет"},
	{"Sukhothai", "Сукхотхай"},
	{"Chiang Mai", "Чианг Май"},
	{"Khon Kaen", "Кхон Кэн"},
	{"Nakhon Ratchasima", "Накхон Ратчасима"},
	{"Udon Thani", "Удон Тхани"},
	{"Samut Prakan", "Самут Пракан"},
	{"Chulalongkorn", "Чулалонгкорн"},
	{"Anutin", "Анутин"},
	{"Chuan", "Чуан"},
}
