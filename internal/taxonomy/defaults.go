package taxonomy

// DefaultEntries returns the built-in category-keyword table, tuned for
// Brazilian-Portuguese transaction descriptions.
//
// Order is load-bearing: lookup returns the first containment hit, so
// categories whose keywords are more specific come before categories
// with generic keywords. Keep "outros" absent on purpose; it is the
// fallback bucket, never matched directly.
func DefaultEntries() []Entry {
	return []Entry{
		{
			CategoryID: "alimentacao",
			Keywords: []string{
				"ifood", "rappi", "restaurante", "lanchonete", "padaria",
				"mercado", "supermercado", "hortifruti", "acougue", "pizzaria",
				"hamburgueria", "cafeteria", "bar ", "burger", "mcdonalds",
				"subway", "habibs", "delivery",
			},
		},
		{
			CategoryID: "transporte",
			Keywords: []string{
				"uber", "99app", "99 pop", "taxi", "metro", "onibus",
				"combustivel", "posto", "gasolina", "etanol", "estacionamento",
				"pedagio", "bilhete unico", "brt",
			},
		},
		{
			CategoryID: "moradia",
			Keywords: []string{
				"aluguel", "condominio", "iptu", "energia", "luz", "enel",
				"sabesp", "agua", "gas", "internet", "vivo fibra", "claro",
				"net servicos",
			},
		},
		{
			CategoryID: "saude",
			Keywords: []string{
				"farmacia", "drogaria", "drogasil", "hospital", "clinica",
				"laboratorio", "consulta", "dentista", "unimed", "amil",
				"plano de saude", "academia", "smartfit",
			},
		},
		{
			CategoryID: "educacao",
			Keywords: []string{
				"escola", "faculdade", "universidade", "curso", "udemy",
				"alura", "livraria", "mensalidade escolar",
			},
		},
		{
			CategoryID: "lazer",
			Keywords: []string{
				"netflix", "spotify", "cinema", "cinemark", "teatro", "show",
				"ingresso", "steam", "playstation", "xbox", "disney", "hbo",
				"prime video", "viagem", "hotel", "airbnb",
			},
		},
		{
			CategoryID: "compras",
			Keywords: []string{
				"amazon", "mercado livre", "magazine luiza", "magalu",
				"americanas", "shopee", "aliexpress", "shein", "renner",
				"riachuelo", "casas bahia", "shopping",
			},
		},
		{
			CategoryID: "servicos",
			Keywords: []string{
				"cartorio", "correios", "lavanderia", "barbearia", "salao",
				"assinatura", "anuidade", "tarifa", "seguro",
			},
		},
		{
			CategoryID: "salario",
			Keywords: []string{
				"salario", "pagamento salario", "folha de pagamento",
				"remuneracao", "pro labore", "13o salario", "ferias",
			},
		},
		{
			CategoryID: "investimentos",
			Keywords: []string{
				"tesouro direto", "cdb", "lci", "lca", "acoes", "fundo",
				"corretora", "rico investimentos", "xp investimentos",
				"nuinvest", "dividendos", "rendimento",
			},
		},
	}
}
