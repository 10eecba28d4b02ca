package clause

import (
	"fmt"

	"metrocontratos/cmd/internal/domain/entity"
)

// FleetData configures the management of a client's instrument park.
type FleetData struct {
	InstrumentCount int      `json:"quantidade_instrumentos"`
	Sites           []string `json:"unidades"`
	Software        string   `json:"sistema_gestao"`
	ReportFrequency string   `json:"frequencia_relatorio"`
	AlertDays       int      `json:"antecedencia_alerta_dias"`
	OnSiteAnalyst   bool     `json:"analista_residente"`
}

func (*FleetData) ContractType() entity.ContractType { return entity.ContractFleetManagement }

func FleetClauses(d *FleetData) []Section {
	scope := "A gestão abrange todos os instrumentos de medição cadastrados pela CONTRATANTE no início da vigência, bem como os incluídos posteriormente mediante comunicação formal."
	if d.InstrumentCount > 0 {
		scope = fmt.Sprintf("A gestão abrange até %d instrumentos de medição cadastrados pela CONTRATANTE. A inclusão de instrumentos acima desse limite dependerá de termo aditivo.", d.InstrumentCount)
	}

	sites := "Os serviços abrangem o endereço da CONTRATANTE indicado na qualificação das partes."
	if s := join(d.Sites); s != "" {
		sites = fmt.Sprintf("Os serviços abrangem as seguintes unidades da CONTRATANTE: %s.", s)
	}

	alert := "30 (trinta) dias"
	if d.AlertDays > 0 {
		alert = fmt.Sprintf("%d dias", d.AlertDays)
	}

	analyst := "O acompanhamento será realizado remotamente pela equipe da CONTRATADA, com visitas técnicas agendadas quando necessário."
	if d.OnSiteAnalyst {
		analyst = "A CONTRATADA manterá analista metrológico residente nas instalações da CONTRATANTE, em horário comercial, sem vínculo empregatício com esta."
	}

	return []Section{
		section("DO ESCOPO DA GESTÃO", scope),
		section("DAS UNIDADES ATENDIDAS", sites),
		section("DO CADASTRO E DO CONTROLE",
			fmt.Sprintf("A CONTRATADA manterá o cadastro atualizado dos instrumentos no %s, com histórico de calibrações, manutenções, localização e situação de uso.", or(d.Software, "sistema de gestão metrológica da CONTRATADA")),
		),
		section("DO PLANEJAMENTO DAS CALIBRAÇÕES",
			fmt.Sprintf("A CONTRATADA elaborará o plano anual de calibrações e alertará a CONTRATANTE com antecedência mínima de %s sobre os vencimentos.", alert),
		),
		section("DOS RELATÓRIOS GERENCIAIS",
			fmt.Sprintf("A CONTRATADA apresentará relatórios gerenciais com periodicidade %s, contendo indicadores de conformidade, instrumentos vencidos e pendências.", or(d.ReportFrequency, "mensal")),
		),
		section("DA ANÁLISE CRÍTICA DOS CERTIFICADOS",
			"A CONTRATADA realizará a análise crítica dos certificados de calibração frente aos critérios de aceitação definidos pela CONTRATANTE, que permanece responsável pela decisão final de uso.",
		),
		section("DO ACOMPANHAMENTO TÉCNICO", analyst),
		section("DOS ACESSOS E INFORMAÇÕES",
			"A CONTRATANTE fornecerá acesso aos instrumentos e às informações de uso necessárias, respondendo pelas consequências de dados desatualizados ou omitidos.",
		),
		section("DA DEVOLUÇÃO DOS DADOS",
			fmt.Sprintf("Ao término do contrato, a CONTRATADA entregará à CONTRATANTE a base de dados dos instrumentos em formato eletrônico aberto, mantendo cópia pelo prazo de %s anos para fins de rastreabilidade.", Count(RecordRetentionYears)),
		),
	}
}
