package clause

import (
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"
)

// LoanData is the bag of a comodato (loan for use) contract.
type LoanData struct {
	Equipment          []Equipment `json:"equipamentos"`
	InstallationSite   string      `json:"local_instalacao"`
	ReturnDays         int         `json:"prazo_devolucao_dias"`
	InsuranceBy        string      `json:"responsavel_seguro"`
	LinkedContract     string      `json:"contrato_vinculado"`
	MinimumConsumption string      `json:"consumo_minimo"`
	MaintenanceBy      string      `json:"responsavel_manutencao"`
}

func (*LoanData) ContractType() entity.ContractType { return entity.ContractLoan }

// GoldenRules are the non-negotiable conditions of every comodato.
var GoldenRules = []string{
	"é vedada a remoção dos equipamentos do local de instalação sem autorização prévia e por escrito da CONTRATADA;",
	"é vedada qualquer intervenção, reparo, ajuste ou abertura dos equipamentos por terceiros ou pela própria CONTRATANTE;",
	"é vedado ceder, sublocar, emprestar ou dar em garantia os equipamentos, a qualquer título;",
	"lacres, etiquetas de identificação e de calibração não poderão ser removidos ou violados;",
	"qualquer dano, defeito, furto ou sinistro deverá ser comunicado à CONTRATADA em até 24 (vinte e quatro) horas;",
	"os equipamentos deverão ser utilizados exclusivamente para a finalidade a que se destinam, por pessoal treinado.",
}

func LoanClauses(d *LoanData) []Section {
	returnDays := "5 (cinco) dias"
	if d.ReturnDays > 0 {
		returnDays = fmt.Sprintf("%d dias", d.ReturnDays)
	}

	insurance := "A CONTRATANTE é responsável, como fiel depositária, por manter os equipamentos segurados contra roubo, furto, incêndio e danos elétricos durante todo o período do comodato."
	if strings.EqualFold(strings.TrimSpace(d.InsuranceBy), "contratada") {
		insurance = "A CONTRATADA manterá os equipamentos segurados, respondendo a CONTRATANTE pela franquia e pelos danos não cobertos decorrentes de culpa ou dolo."
	}

	maintenance := "A manutenção preventiva e corretiva dos equipamentos será realizada exclusivamente pela CONTRATADA ou por quem ela indicar, sem custo para a CONTRATANTE, salvo quando decorrente de mau uso."
	if m := strings.TrimSpace(d.MaintenanceBy); m != "" {
		maintenance = fmt.Sprintf("A manutenção dos equipamentos será realizada por %s, vedada qualquer intervenção por terceiros não autorizados.", m)
	}

	linked := "O presente comodato é autônomo e não está vinculado a outro contrato entre as partes."
	if l := strings.TrimSpace(d.LinkedContract); l != "" {
		linked = fmt.Sprintf("O presente comodato é acessório ao contrato nº %s, de modo que a extinção deste, por qualquer motivo, implicará a imediata extinção do comodato.", l)
	}

	consumption := ""
	if c := strings.TrimSpace(d.MinimumConsumption); c != "" {
		consumption = fmt.Sprintf("Como condição do comodato, a CONTRATANTE obriga-se ao consumo mínimo de %s, e o descumprimento por 3 (três) meses consecutivos autoriza a CONTRATADA a retirar os equipamentos.", strings.TrimRight(c, "."))
	}

	return []Section{
		section("DO OBJETO DO COMODATO",
			"A CONTRATADA cede à CONTRATANTE, a título de comodato, gratuito e temporário, os seguintes equipamentos:",
			equipmentItems(d.Equipment, "Os equipamentos relacionados no termo de entrega assinado pelas partes, que passa a integrar este contrato."),
		),
		section("DA ENTREGA E DA INSTALAÇÃO",
			fmt.Sprintf("Os equipamentos serão entregues e instalados %s, mediante termo de entrega que registrará seu estado de conservação e funcionamento.", installSite(d.InstallationSite)),
		),
		section("DO USO DOS EQUIPAMENTOS",
			"A CONTRATANTE utilizará os equipamentos com zelo, exclusivamente em suas atividades, responsabilizando-se pelo seu uso adequado nos termos dos artigos 579 a 585 do Código Civil.",
			consumption,
		),
		section("DA CONSERVAÇÃO E DA MANUTENÇÃO",
			maintenance,
		),
		section("DO SEGURO E DA RESPONSABILIDADE",
			insurance,
			"A CONTRATANTE responderá pelo valor de reposição dos equipamentos em caso de perda, furto ou dano não coberto pelo seguro.",
		),
		section("DAS REGRAS DE OURO",
			"São regras de observância obrigatória pela CONTRATANTE, cujo descumprimento implicará a rescisão imediata do comodato:",
			items(GoldenRules...),
		),
		section("DA DEVOLUÇÃO",
			fmt.Sprintf("Extinto o comodato, a CONTRATANTE devolverá os equipamentos no prazo de %s, no mesmo estado em que os recebeu, ressalvado o desgaste natural pelo uso regular, sob pena de pagamento de aluguel arbitrado pela CONTRATADA até a efetiva devolução.", returnDays),
			"No ato da devolução será lavrado termo de vistoria, e eventuais danos serão cobrados da CONTRATANTE pelo custo de reparo ou de reposição.",
		),
		section("DA VINCULAÇÃO CONTRATUAL",
			linked,
		),
		section("DA PROPRIEDADE",
			"Os equipamentos permanecem de propriedade exclusiva da CONTRATADA, não podendo ser objeto de penhora, arresto ou qualquer constrição por dívidas da CONTRATANTE, que deverá comunicar imediatamente qualquer ameaça nesse sentido.",
		),
	}
}

func installSite(site string) string {
	if site = strings.TrimSpace(site); site == "" {
		return "no endereço da CONTRATANTE indicado na qualificação das partes"
	}
	return "em " + site
}
