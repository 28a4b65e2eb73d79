package lang

import "github.com/vadimfedulov035/cyrillify/internal/rules"

// Burmese romanizations follow the conventional spellings of the state press.
var Burmese = &Language{
	Code:     "my",
	Name:     "Бирманский",
	English:  "Burmese",
	Entries:  burmeseRules,
	Examples: burmeseExamples,
}

var burmeseRules = []rules.Entry{
	{"A", "А"}, {"B", "Б"}, {"C", "К"}, {"D", "Д"}, {"E", "Е"},
	{"F", "Ф"}, {"G", "Г"}, {"H", "Х"}, {"I", "И"}, {"J", "ДЖ"},
	{"K", "К"}, {"L", "Л"}, {"M", "М"}, {"N", "Н"}, {"O", "О"},
	{"P", "П"}, {"Q", "К"}, {"R", "Р"}, {"S", "С"}, {"T", "Т"},
	{"U", "У"}, {"V", "В"}, {"W", "В"}, {"X", "КС"}, {"Y", "Й"},
	{"Z", "З"},

	// Vowels and diphthongs
	{"AE", "Э"}, {"AI", "АЙ"}, {"AW", "О"}, {"AY", "ЕЙ"},
	{"AYE", "Э"}, {"EE", "И"}, {"EI", "ЕЙ"}, {"OE", "О"},
	{"OO", "У"}, {"ON", "ОУН"}, {"YA", "Я"}, {"YE", "Е"},
	{"YU", "Ю"}, {"YW", "Ю"},

	// Closing vowels
	{"ONE|", "ОН"}, {"OKE|", "ОУ"}, {"INE|", "АЙН"},

	// Sibilants and aspirates
	{"SH", "Ш"}, {"SW", "ШВ"}, {"HK", "КХ"}, {"HP", "ПХ"}, {"HT", "ТХ"},

	// Finals dropped in speech
	{"AR", "А"}, {"AUK", "АУ"}, {"AT", "А"},
	{"IT", "И"}, {"|TH", "Т"}, {"INT|", "ИН"},
	{"NG|", "Н"}, {"NT|", "Н"}, {"AIK|", "АЙ"},

	// Palatalized consonants
	{"CH", "Ч"}, {"GY", "ДЖ"}, {"KY", "Ч"}, {"MY", "МЬ"},
	{"NY", "НЬ"}, {"PY", "ПЬ"}, {"|KY", "ЧЖ"},

	{"MYA", "МЬЯ"}, {"NYA", "НЬЯ"}, {"PYA", "ПЬЯ"},

	{"KYO", "ЧЬО"}, {"KYU", "ЧЬЮ"}, {"KYW", "ЧЬЮ"},
	{"MYO", "МЬО"}, {"MYU", "МЬЮ"}, {"MYW", "МЬЮ"},
	{"NYO", "НЬО"}, {"NYU", "НЬЮ"}, {"NYW", "НЬЮ"},
	{"PYO", "ПЬО"}, {"PYU", "ПЬЮ"}, {"PYW", "ПЬЮ"},

	{"ONYO", "ОУНЬО"}, {"ONYU", "ОУНЬЮ"}, {"ONYW", "ОУНЬЮ"},

	{"KYINE|", "ЧЬЯЙН"}, {"PYINE|", "ПЬЯЙН"},
	{"MYINE|", "МЬЯЙН"}, {"NYINE|", "НЬЯЙН"},

	// Whole words
	{"|SAI|", "САЙН"},
}

// Heads of state and government, their deputies, and a few places.
var burmeseExamples = []Example{
	{"Hkun Law", "Кхун Ло"},
	{"Sao Shwe Thaik", "Сао Шве Тай"},
	{"Ba U", "Ба У"},
	{"Win Maung", "Вин Маун"},
	{"Ne Win", "Не Вин"},
	{"San Yu", "Сан Ю"},
	{"Sein Lwin", "Сейн Лвин"},
	{"Maung Maung", "Маун Маун"},
	{"Saw Maung", "Со Маун"},
	{"Than Shwe", "Тан Шве"},
	{"Thein Sein", "Тейн Сейн"},
	{"Htin Kyaw", "Тхин Чжо"},
	{"Win Myint", "Вин Мьин"},
	{"Min Aung Hlaing", "Мин Аун Хлайн"},
	{"Myint Swe", "Мьин Шве"},
	{"U Nu", "У Ну"},
	{"Sein Win", "Сейн Вин"},
	{"Maung Maung Kha", "Маун Маун Кха"},
	{"Tun Tin", "Тун Тин"},
	{"Khin Nyunt", "Кхин Ньюн"},
	{"Soe Win", "Со Вин"},
	{"Bo Let Ya", "Бо Лет Я"},
	{"Kyaw Nyein", "Чжо Ньейн"},
	{"Sao Hkun Hkio", "Сао Кхун Кхио"},
	{"Thein Maung", "Тейн Маун"},
	{"Lun Baw", "Лун Бо"},
	{"U Lwin", "У Лвин"},
	{"Thura Kyaw Htin", "Тура Чжо Тхин"},
	{"Khin Maung Yin", "Кхин Маун Йин"},
	{"Maung Maung Khin", "Маун Маун Кхин"},
	{"Maung Aye", "Маун Э"},
	{"Tin Hla", "Тин Хла"},
	{"Tin Aung Myint Oo", "Тин Аун Мьин У"},
	{"Sai Mauk Kham", "Сайн Мау Кхам"},
	{"Nyan Tun", "Ньян Тун"},
	{"Mya Tun Oo", "Мья Тун У"},
	{"Tin Aung San", "Тин Аун Сан"},
	{"Win Shein", "Вин Шейн"},
	{"Than Swe", "Тан Шве"},
	{"Nyo Saw", "Ньо Со"},
	{"Maung Maung Aye", "Маун Маун Э"},
	{"Myanmar", "Мьянма"},
	{"Mee-Bone-Pyan U Kyaw Yin", "Ми-Бон-Пьян У Чжо Йин"},
	{"Daw Kin Win Shwe", "До Кин Вин Шве"},
	{"Hain", "Хайн"},
	{"Hoke", "Хоу"},
}
