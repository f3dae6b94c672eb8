package ref

// BookName maps a Portuguese book title, as written in topic citations, to the
// code used by translation documents.
type BookName struct {
	Name string
	Code string
}

// bookNames is the canonical citation table in canonical order. Salmo and
// Salmos both map to "sl"; every other code has one title.
var bookNames = []BookName{
	// Antigo Testamento
	{"Gênesis", "gn"},
	{"Êxodo", "ex"},
	{"Levítico", "lv"},
	{"Números", "nm"},
	{"Deuteronômio", "dt"},
	{"Josué", "js"},
	{"Juízes", "jz"},
	{"Rute", "rt"},
	{"1 Samuel", "1sm"},
	{"2 Samuel", "2sm"},
	{"1 Reis", "1rs"},
	{"2 Reis", "2rs"},
	{"1 Crônicas", "1cr"},
	{"2 Crônicas", "2cr"},
	{"Esdras", "ed"},
	{"Neemias", "ne"},
	{"Ester", "et"},
	{"Jó", "jó"},
	{"Salmo", "sl"},
	{"Salmos", "sl"},
	{"Provérbios", "pv"},
	{"Eclesiastes", "ec"},
	{"Cânticos", "ct"},
	{"Isaías", "is"},
	{"Jeremias", "jr"},
	{"Lamentações", "lm"},
	{"Ezequiel", "ez"},
	{"Daniel", "dn"},
	{"Oseias", "os"},
	{"Joel", "jl"},
	{"Amós", "am"},
	{"Obadias", "ob"},
	{"Jonas", "jn"},
	{"Miquéias", "mq"},
	{"Naum", "na"},
	{"Habacuque", "hc"},
	{"Sofonias", "sf"},
	{"Ageu", "ag"},
	{"Zacarias", "zc"},
	{"Malaquias", "ml"},
	// Novo Testamento
	{"Mateus", "mt"},
	{"Marcos", "mc"},
	{"Lucas", "lc"},
	{"João", "jo"},
	{"Atos", "at"},
	{"Romanos", "rm"},
	{"1 Coríntios", "1co"},
	{"2 Coríntios", "2co"},
	{"Gálatas", "gl"},
	{"Efésios", "ef"},
	{"Filipenses", "fp"},
	{"Colossenses", "cl"},
	{"1 Tessalonicenses", "1ts"},
	{"2 Tessalonicenses", "2ts"},
	{"1 Timóteo", "1tm"},
	{"2 Timóteo", "2tm"},
	{"Tito", "tt"},
	{"Filemom", "fm"},
	{"Hebreus", "hb"},
	{"Tiago", "tg"},
	{"1 Pedro", "1pe"},
	{"2 Pedro", "2pe"},
	{"1 João", "1jo"},
	{"2 João", "2jo"},
	{"3 João", "3jo"},
	{"Judas", "jd"},
	{"Apocalipse", "ap"},
}

var codeByName = func() map[string]string {
	m := make(map[string]string, len(bookNames))
	for _, b := range bookNames {
		m[b.Name] = b.Code
	}
	return m
}()

// Code returns the book code for an exact, case-sensitive book title.
func Code(name string) (string, bool) {
	code, ok := codeByName[name]
	return code, ok
}

// Names returns a copy of the citation table in canonical order.
func Names() []BookName {
	out := make([]BookName, len(bookNames))
	copy(out, bookNames)
	return out
}
