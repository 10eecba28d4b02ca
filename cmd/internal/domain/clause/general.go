package clause

import (
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"
)

// Preamble qualifies both parties. The client paragraph branches on the
// person type: CNPJ and "pessoa jurídica" for companies, CPF and "pessoa
// física" for individuals.
func Preamble(t Terms) Section {
	co := t.Company
	contracted := fmt.Sprintf(
		"CONTRATADA: %s, pessoa jurídica de direito privado, inscrita no CNPJ sob o nº %s, com sede em %s, neste ato representada por %s, %s, doravante denominada simplesmente CONTRATADA.",
		or(co.LegalName, "(razão social não informada)"),
		or(co.CNPJ, "(não informado)"),
		or(co.Address(), "(endereço não informado)"),
		or(co.RepresentativeName, "seu representante legal"),
		or(co.RepresentativeRole, "na forma de seu contrato social"),
	)

	return section("QUALIFICAÇÃO DAS PARTES",
		contracted,
		ClientQualification(t.Client),
		"As partes acima identificadas têm, entre si, justo e acertado o presente contrato, que se regerá pelas cláusulas seguintes e pelas condições descritas no presente.",
	)
}

// ClientQualification is the CONTRATANTE paragraph of the preamble.
func ClientQualification(c entity.Client) string {
	name := or(c.LegalName, "(nome não informado)")
	address := or(c.Address(), "(endereço não informado)")

	if c.IsIndividual() {
		return fmt.Sprintf(
			"CONTRATANTE: %s, pessoa física, inscrita no CPF sob o nº %s, residente e domiciliada em %s, doravante denominada simplesmente CONTRATANTE.",
			name, or(c.CPF, "(não informado)"), address,
		)
	}

	representative := ""
	if r := strings.TrimSpace(c.RepresentativeName); r != "" {
		representative = ", neste ato representada por " + r
		if cpf := strings.TrimSpace(c.RepresentativeCPF); cpf != "" {
			representative += ", inscrito no CPF sob o nº " + cpf
		}
	}
	return fmt.Sprintf(
		"CONTRATANTE: %s, pessoa jurídica de direito privado, inscrita no CNPJ sob o nº %s, com sede em %s%s, doravante denominada simplesmente CONTRATANTE.",
		name, or(c.CNPJ, "(não informado)"), address, representative,
	)
}

func Object(t Terms) Section {
	accreditation := ""
	if code := strings.TrimSpace(t.Company.AccreditationCode); code != "" {
		accreditation = fmt.Sprintf(", na condição de laboratório acreditado pela Cgcre/Inmetro sob o nº %s", code)
	}
	return section("DO OBJETO",
		fmt.Sprintf("O presente contrato tem por objeto a prestação, pela CONTRATADA à CONTRATANTE, de serviços de %s%s, nos termos e condições estabelecidos neste instrumento e em seus anexos.", t.service(), accreditation),
		"Integram o presente contrato, independentemente de transcrição, a proposta comercial aceita pela CONTRATANTE e as condições específicas previstas neste instrumento. Em caso de divergência, prevalecerá o disposto neste contrato.",
	)
}

// Term states either the fixed range or the indeterminate-term phrase. When
// the contract is indeterminate the end date is never printed, even if set.
func Term(t Terms) Section {
	var validity string
	switch {
	case t.Indeterminate:
		validity = fmt.Sprintf("O presente contrato vigorará por prazo indeterminado, a partir de %s, podendo ser rescindido por qualquer das partes mediante aviso prévio, por escrito, de %s dias.", t.start(), Count(TerminationNoticeDays))
	case t.EndDate != nil && !t.EndDate.IsZero():
		validity = fmt.Sprintf("O presente contrato vigorará pelo prazo determinado de %s a %s, podendo ser prorrogado mediante termo aditivo assinado pelas partes.", t.start(), Date(*t.EndDate))
	default:
		validity = fmt.Sprintf("O presente contrato vigorará pelo prazo de %s meses, contados de %s, podendo ser prorrogado mediante termo aditivo assinado pelas partes.", Count(DefaultFixedTermMonths), t.start())
	}

	return section("DO PRAZO DE VIGÊNCIA",
		validity,
		"Os serviços solicitados durante a vigência e não concluídos até o seu término serão finalizados nas mesmas condições aqui pactuadas.",
	)
}

func Payment(t Terms) Section {
	price := fmt.Sprintf("Pelos serviços objeto deste contrato, a CONTRATANTE pagará à CONTRATADA o valor total de %s.", Money(t.TotalValue))
	if t.MonthlyValue.IsPositive() {
		price = fmt.Sprintf("Pelos serviços objeto deste contrato, a CONTRATANTE pagará à CONTRATADA o valor mensal de %s, perfazendo o valor total estimado de %s.", Money(t.MonthlyValue), Money(t.TotalValue))
	}

	conditions := or(t.PaymentTerms, fmt.Sprintf("em até %s dias contados da emissão da nota fiscal correspondente", Count(DefaultPaymentDays)))
	conditions = strings.TrimSuffix(conditions, ".")
	method := or(t.PaymentMethod, "boleto bancário ou transferência bancária para conta indicada pela CONTRATADA")
	payment := fmt.Sprintf("O pagamento será efetuado %s, por meio de %s.", conditions, method)
	if t.DueDay >= 1 && t.DueDay <= 31 {
		payment = fmt.Sprintf("O pagamento será efetuado %s, com vencimento no dia %d de cada mês, por meio de %s.", conditions, t.DueDay, method)
	}

	return section("DO PREÇO E DAS CONDIÇÕES DE PAGAMENTO",
		price,
		payment,
		fmt.Sprintf("O atraso no pagamento sujeitará a CONTRATANTE à multa de %s sobre o valor devido, acrescida de juros de mora de %s ao mês, calculados pro rata die, e correção monetária.", Percent(LateFeePercent), Percent(LateInterestPercent)),
		fmt.Sprintf("Os valores serão reajustados anualmente, a contar da data de início da vigência, pela variação acumulada do %s ou de outro índice que venha a substituí-lo.", DefaultReadjustmentRate),
		"Os tributos incidentes sobre os serviços estão incluídos nos preços contratados, sendo de responsabilidade do contribuinte definido na legislação tributária.",
	)
}

// ContractorObligations lists the duties of the CONTRATANTE.
func ContractorObligations(t Terms) Section {
	return section("DAS OBRIGAÇÕES DA CONTRATANTE",
		"Constituem obrigações da CONTRATANTE, sem prejuízo de outras previstas neste instrumento:",
		items(
			"efetuar os pagamentos nos prazos e condições pactuados;",
			"fornecer à CONTRATADA as informações, documentos e acessos necessários à execução dos serviços;",
			"disponibilizar os instrumentos e equipamentos nas datas acordadas, limpos e em condições de manuseio seguro;",
			"designar um responsável para acompanhar a execução do contrato e servir de interlocutor com a CONTRATADA;",
			fmt.Sprintf("comunicar por escrito, em até %s dias do recebimento, qualquer irregularidade constatada nos serviços ou documentos entregues;", Count(DefaultComplaintDays)),
			"observar as recomendações técnicas emitidas pela CONTRATADA quanto ao uso e à conservação dos equipamentos.",
		),
	)
}

// ContractedObligations lists the duties of the CONTRATADA.
func ContractedObligations(t Terms) Section {
	accreditation := "executar os serviços em conformidade com os requisitos da norma ABNT NBR ISO/IEC 17025 e com as boas práticas de metrologia;"
	if code := strings.TrimSpace(t.Company.AccreditationCode); code != "" {
		accreditation = fmt.Sprintf("executar os serviços em conformidade com os requisitos da norma ABNT NBR ISO/IEC 17025, mantendo válida a acreditação nº %s no escopo aplicável;", code)
	}
	return section("DAS OBRIGAÇÕES DA CONTRATADA",
		"Constituem obrigações da CONTRATADA, sem prejuízo de outras previstas neste instrumento:",
		items(
			fmt.Sprintf("prestar os serviços de %s com qualidade, diligência e dentro dos prazos acordados;", t.service()),
			accreditation,
			"empregar profissionais qualificados e padrões com rastreabilidade metrológica comprovada;",
			"zelar pela guarda e integridade dos bens da CONTRATANTE que estiverem sob sua responsabilidade;",
			"manter a CONTRATANTE informada sobre o andamento dos serviços e sobre qualquer fato que possa comprometer sua execução;",
			"cumprir a legislação trabalhista, previdenciária, fiscal e de segurança do trabalho relativa a seus empregados.",
		),
	)
}

func Liability(t Terms) Section {
	return section("DA LIMITAÇÃO DE RESPONSABILIDADE",
		fmt.Sprintf("A responsabilidade total da CONTRATADA por quaisquer perdas e danos decorrentes deste contrato fica limitada ao valor total do contrato, correspondente a %s.", Money(t.TotalValue)),
		"Em nenhuma hipótese a CONTRATADA responderá por lucros cessantes, perda de produção, danos indiretos ou decorrentes do uso inadequado dos instrumentos, de decisões tomadas com base nos resultados fora do período de validade informado ou de informações incorretas fornecidas pela CONTRATANTE.",
	)
}

func Confidentiality(t Terms) Section {
	return section("DA CONFIDENCIALIDADE E DA PROTEÇÃO DE DADOS",
		"As partes obrigam-se a manter sigilo sobre todas as informações técnicas, comerciais e operacionais a que tiverem acesso em razão deste contrato, não as divulgando a terceiros sem autorização prévia e por escrito da outra parte.",
		fmt.Sprintf("A obrigação de confidencialidade subsistirá pelo prazo de %s anos após o término deste contrato, qualquer que seja o motivo.", Count(ConfidentialityYears)),
		"O tratamento de dados pessoais eventualmente realizado em razão deste contrato observará a Lei nº 13.709/2018 (Lei Geral de Proteção de Dados Pessoais), limitando-se às finalidades aqui previstas.",
	)
}

func Warranty(t Terms) Section {
	return section("DA GARANTIA",
		fmt.Sprintf("A CONTRATADA garante os serviços executados pelo prazo de %s dias contados da sua entrega, obrigando-se a refazer, sem ônus, aqueles que apresentarem falhas comprovadamente atribuíveis à sua execução.", Count(WarrantyDays)),
		"A garantia não abrange danos causados por mau uso, quedas, intervenção de terceiros, condições ambientais inadequadas ou desgaste natural dos equipamentos.",
	)
}

func Termination(t Terms) Section {
	return section("DA RESCISÃO",
		fmt.Sprintf("O presente contrato poderá ser rescindido por qualquer das partes, sem justa causa, mediante aviso prévio por escrito com antecedência mínima de %s dias.", Count(TerminationNoticeDays)),
		"O contrato será rescindido de pleno direito, independentemente de notificação, nas hipóteses de descumprimento de qualquer de suas cláusulas não sanado no prazo de 10 (dez) dias contados da notificação, de falência, recuperação judicial ou dissolução de qualquer das partes.",
		fmt.Sprintf("A parte que der causa à rescisão motivada pagará à outra multa de %s sobre o valor remanescente do contrato, sem prejuízo da apuração de perdas e danos.", Percent(TerminationPenaltyPct)),
		"Em qualquer hipótese de rescisão, serão devidos os valores correspondentes aos serviços já executados até a data do seu término.",
	)
}

func Miscellaneous(t Terms) Section {
	forum := "da sede da CONTRATADA"
	if city := strings.TrimSpace(t.Company.City); city != "" {
		forum = "de " + city
		if uf := strings.TrimSpace(t.Company.State); uf != "" {
			forum += "/" + uf
		}
	}
	return section("DAS DISPOSIÇÕES GERAIS E DO FORO",
		"A tolerância de qualquer das partes quanto ao descumprimento de obrigações da outra não importará novação, renúncia ou alteração do pactuado.",
		"Qualquer alteração deste contrato somente terá validade se formalizada por termo aditivo assinado pelas partes.",
		"É vedada a cessão ou transferência, total ou parcial, dos direitos e obrigações deste contrato sem a anuência prévia e por escrito da outra parte.",
		"As partes reconhecem como válida a assinatura deste instrumento por meio eletrônico, nos termos da Medida Provisória nº 2.200-2/2001 e da Lei nº 14.063/2020.",
		fmt.Sprintf("Fica eleito o foro da Comarca %s para dirimir quaisquer questões oriundas deste contrato, com renúncia expressa a qualquer outro, por mais privilegiado que seja.", forum),
	)
}

// AdditionalClauses wraps free-form text typed by the user. Blank text yields
// a Section with no nodes; the assembler skips it.
func AdditionalClauses(text string) Section {
	var paragraphs []any
	for _, p := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		paragraphs = append(paragraphs, strings.TrimSpace(p))
	}
	return section("DA CLÁUSULA ADICIONAL", paragraphs...)
}

// General returns the ten general clauses in their fixed order.
func General(t Terms) []Section {
	return []Section{
		Object(t),
		Term(t),
		Payment(t),
		ContractorObligations(t),
		ContractedObligations(t),
		Liability(t),
		Confidentiality(t),
		Warranty(t),
		Termination(t),
		Miscellaneous(t),
	}
}
