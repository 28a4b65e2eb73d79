package lang

import "github.com/vadimfedulov035/cyrillify/internal/rules"

// Vietnamese takes Latin letters with their quality marks. Tone marks are
// not mapped and pass through.
var Vietnamese = &Language{
	Code:     "vi",
	Name:     "Вьетнамский",
	English:  "Vietnamese",
	Entries:  vietnameseRules,
	Examples: vietnameseExamples,
}

var vietnameseRules = []rules.Entry{
	{"A", "А"}, {"B", "Б"}, {"C", "К"}, {"D", "З"},
	{"E", "Е"}, {"F", "Ф"}, {"G", "Г"}, {"H", "Х"},
	{"I", "И"}, {"J", "Ч"}, {"K", "К"}, {"L", "Л"},
	{"M", "М"}, {"N", "Н"}, {"O", "О"}, {"P", "П"},
	{"R", "Р"}, {"S", "Ш"}, {"T", "Т"}, {"U", "У"},
	{"V", "В"}, {"W", "В"}, {"X", "С"}, {"Y", "И"},
	{"Z", "З"}, {"Đ", "Д"}, {"Ư", "Ы"},

	// Silent and aspirated H
	{"GH", "Г"}, {"PH", "Ф"}, {"TH", "ТХ"},

	// CH
	{"CH", "Т"}, {"CH|", "ТЬ"}, {"CHA", "ТЯ"}, {"CHI", "ТИ"},
	{"CHIA", "ТЬЯ"}, {"CHIE", "ТЬЕ"}, {"CHIO", "ТЁ"}, {"CHIU", "ТЬЮ"},
	{"CHO", "ТЁ"}, {"CHÔ", "ТЁ"}, {"CHƠ", "ТЁ"}, {"CHU", "ТЬЮ"},
	{"CHƯ", "ТЬЫ"},

	// GI
	{"GI", "З"}, {"|GI|", "ЗИ"}, {"GIÊ", "ЗЬЕ"}, {"GIƯ", "ЗЬЫ"},
	{"GIA", "ЗЯ"}, {"GIE", "ЗЕ"}, {"GIO", "ЗЁ"}, {"GIÔ", "ЗЁ"},
	{"GIƠ", "ЗЁ"}, {"GIU", "ЗЮ"},

	// NG and NH
	{"NGH", "НГ"}, {"NH", "НЬ"}, {"NHA", "НЯ"}, {"NHE", "НЕ"},
	{"NHI", "НИ"}, {"NHO", "НЁ"}, {"NHÔ", "НЁ"}, {"NHƠ", "НЁ"},
	{"NHU", "НЮ"},

	{"TR", "Ч"}, {"ÂY", "АЙ"}, {"TÂY", "ТЭЙ"}, {"PLÂY", "ПЛЕЙ"},

	// E after vowels
	{"|E", "Э"}, {"AE", "АЭ"}, {"IE", "ИЭ"},
	{"OE", "ОЭ"}, {"UE", "УЭ"}, {"ƯE", "ЫЭ"},

	{"|IÊ", "ЙЕ"}, {"IÊ", "ЬЕ"}, {"YÊ", "ЙЕ"},

	// UI and UY
	{"UI", "УЙ"}, {"UY", "УИ"},
	{"QUI", "КУИ"}, {"QUY", "КУИ"},
	{"HUI", "ХЮИ"}, {"HUY", "ХЮИ"},
	{"KHUI", "КЮИ"}, {"KHUY", "КЮИ"},
	{"THUI", "ТЮИ"}, {"THUY", "ТЮИ"},
	{"CHUI", "ТЮЙ"}, {"CHUY", "ТЮИ"},
	{"NHUI", "НЮЙ"}, {"NHUY", "НЮИ"},
	{"GIUI", "ЗЮЙ"}, {"GIUY", "ЗЮИ"},
	{"LUI", "ЛЮЙ"}, {"LUY", "ЛЮИ"},
	{"XUI", "СЮЙ"}, {"XUY", "СЮИ"},
	{"XUE", "СЮЭ"},

	// Y
	{"|Y", "Й"}, {"AY", "АЙ"}, {"EY", "ЕЙ"}, {"AEY", "АЭЙ"},
	{"EEY", "ЭЭЙ"}, {"IEY", "ИЭЙ"}, {"OEY", "ОЭЙ"}, {"UEY", "УЭЙ"},
	{"IY", "ИЙ"}, {"OY", "ОЙ"},

	// UYÊ
	{"UYÊ", "УЕ"}, {"HUYÊ", "ХЮЕ"}, {"CHUYÊ", "ТЮЕ"},
	{"NHUYÊ", "НЮЕ"}, {"GIUYÊ", "ЗЮЕ"}, {"LUYÊ", "ЛЮЕ"},
	{"XUYÊ", "СЮЕ"},
}

var vietnameseExamples = []Example{
	{"Ho Chi Minh", "Хо Ти Минь"},
	{"Tran Hung Dao", "Чан Хунг Зао"},
	{"Pham Van Dong", "Фам Ван Зонг"},
	{"Nha Trang", "Ня Чанг"},
	{"Vung Tau", "Вунг Тау"},
	{"Can Tho", "Кан Тхо"},
	{"Tay Ninh", "Тай Нинь"},
	{"Giang", "Зянг"},
	{"Truong Chinh", "Чуонг Тинь"},
	{"Chuyên", "Тюен"},
	{"Giêng", "Зьенг"},
	{"Hue", "Хуэ"},
}
