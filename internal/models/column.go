package models

// Column é a configuração de apresentação de uma coluna do quadro,
// personalizável pelo usuário. NOT_CALLED nunca aparece como coluna:
// contatos não trabalhados ficam apenas no diretório lateral.
type Column struct {
	ID    ContactStatus `json:"id"`
	Title string        `json:"title"`
	Color string        `json:"color"`
	Bg    string        `json:"bg"`
}

type Theme struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Color   string `json:"color"`
	Bg      string `json:"bg"`
	Preview string `json:"preview"`
}

var AvailableThemes = []Theme{
	{ID: "purple", Label: "Roxo", Color: "text-purple-600", Bg: "bg-purple-50", Preview: "bg-purple-600"},
	{ID: "blue", Label: "Azul", Color: "text-blue-600", Bg: "bg-blue-50", Preview: "bg-blue-600"},
	{ID: "green", Label: "Verde", Color: "text-green-600", Bg: "bg-green-50", Preview: "bg-green-600"},
	{ID: "orange", Label: "Laranja", Color: "text-orange-600", Bg: "bg-orange-50", Preview: "bg-orange-600"},
	{ID: "red", Label: "Vermelho", Color: "text-red-600", Bg: "bg-red-50", Preview: "bg-red-600"},
	{ID: "pink", Label: "Rosa", Color: "text-pink-600", Bg: "bg-pink-50", Preview: "bg-pink-600"},
	{ID: "rose", Label: "Rose", Color: "text-rose-600", Bg: "bg-rose-50", Preview: "bg-rose-600"},
	{ID: "gray", Label: "Cinza", Color: "text-gray-600", Bg: "bg-gray-50", Preview: "bg-gray-600"},
	{ID: "cyan", Label: "Ciano", Color: "text-cyan-600", Bg: "bg-cyan-50", Preview: "bg-cyan-600"},
	{ID: "indigo", Label: "Indigo", Color: "text-indigo-600", Bg: "bg-indigo-50", Preview: "bg-indigo-600"},
	{ID: "teal", Label: "Verde Água", Color: "text-teal-600", Bg: "bg-teal-50", Preview: "bg-teal-600"},
	{ID: "sky", Label: "Céu", Color: "text-sky-600", Bg: "bg-sky-50", Preview: "bg-sky-600"},
}

// DefaultColumns retorna a configuração padrão do quadro. Retorna sempre
// uma cópia nova para o chamador poder modificar sem afetar o padrão.
func DefaultColumns() []Column {
	return []Column{
		{ID: StatusNoAnswer, Title: "Liguei", Color: "text-orange-600", Bg: "bg-orange-50"},
		{ID: StatusAbsent, Title: "Ausente", Color: "text-red-500", Bg: "bg-red-50"},
		{ID: StatusWhatsappTalk, Title: "Falei pelo WhatsApp", Color: "text-teal-600", Bg: "bg-teal-50"},
		{ID: StatusEmailSent, Title: "E-mail Enviado", Color: "text-sky-600", Bg: "bg-sky-50"},
		{ID: StatusProposalSent, Title: "Proposta Enviada", Color: "text-pink-600", Bg: "bg-pink-50"},
		{ID: StatusNegotiation, Title: "Negociação", Color: "text-purple-600", Bg: "bg-purple-50"},
		{ID: StatusReturnScheduled, Title: "Retorno", Color: "text-blue-600", Bg: "bg-blue-50"},
		{ID: StatusClosed, Title: "Fechamento", Color: "text-green-600", Bg: "bg-green-50"},
		{ID: StatusDeclined, Title: "Declinou", Color: "text-rose-600", Bg: "bg-rose-50"},
		{ID: StatusNotInterested, Title: "Sem Interesse", Color: "text-gray-500", Bg: "bg-gray-100"},
	}
}

var statusLabels = map[ContactStatus]string{
	StatusNoAnswer:        "Liguei",
	StatusAbsent:          "Ausente",
	StatusWhatsappTalk:    "Falei pelo WhatsApp",
	StatusEmailSent:       "E-mail Enviado",
	StatusProposalSent:    "Proposta Enviada",
	StatusReturnScheduled: "Retorno",
	StatusNegotiation:     "Negociação",
	StatusClosed:          "Fechamento",
	StatusDeclined:        "Declinou",
	StatusNotInterested:   "Sem Interesse",
}

// TranslateStatus resolve o nome exibido de um status: o título definido
// pelo usuário na configuração de colunas, senão o rótulo padrão, senão o
// próprio token interno.
func TranslateStatus(status ContactStatus, columns []Column) string {
	if status == StatusNotCalled {
		return "Não Ligado"
	}
	for _, col := range columns {
		if col.ID == status {
			return col.Title
		}
	}
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}
