package clause

import (
	"fmt"
	"strings"

	"metrocontratos/cmd/internal/domain/entity"
)

// ServiceProvisionData belongs to the legacy generic service-provision
// contracts. New contracts use the calibration set; existing ones keep this.
type ServiceProvisionData struct {
	Description  string   `json:"descricao_servicos"`
	Location     string   `json:"local"`
	Schedule     string   `json:"cronograma"`
	Deliverables []string `json:"entregaveis"`
	Materials    string   `json:"materiais"`
	Team         string   `json:"equipe"`
}

func (*ServiceProvisionData) ContractType() entity.ContractType {
	return entity.ContractServiceProvision
}

func ServiceProvisionClauses(d *ServiceProvisionData) []Section {
	materials := "Os materiais, ferramentas e padrões necessários à execução dos serviços serão fornecidos pela CONTRATADA."
	if m := strings.TrimSpace(d.Materials); m != "" {
		materials = fmt.Sprintf("Quanto aos materiais necessários à execução dos serviços, fica estabelecido que: %s.", strings.TrimRight(m, "."))
	}

	return []Section{
		section("DA DESCRIÇÃO DOS SERVIÇOS",
			fmt.Sprintf("Os serviços compreendem: %s.", strings.TrimRight(or(d.Description, "calibração, ensaio e verificação de instrumentos de medição, conforme proposta comercial"), ".")),
		),
		section("DO LOCAL DE PRESTAÇÃO",
			fmt.Sprintf("Os serviços serão prestados %s.", or(d.Location, "nas dependências da CONTRATADA ou, quando necessário, nas instalações da CONTRATANTE")),
		),
		section("DO CRONOGRAMA",
			fmt.Sprintf("Os serviços obedecerão ao seguinte cronograma: %s.", strings.TrimRight(or(d.Schedule, "conforme ordens de serviço emitidas pela CONTRATANTE e aceitas pela CONTRATADA"), ".")),
		),
		section("DOS ENTREGÁVEIS",
			"Ao final dos serviços, a CONTRATADA entregará:",
			listItems(d.Deliverables, "Os relatórios e certificados técnicos correspondentes a cada serviço executado."),
		),
		section("DOS MATERIAIS",
			materials,
		),
		section("DA EQUIPE TÉCNICA",
			fmt.Sprintf("Os serviços serão executados por %s, sem qualquer vínculo empregatício com a CONTRATANTE.", or(d.Team, "profissionais capacitados da CONTRATADA")),
		),
		section("DA INDEPENDÊNCIA DAS PARTES",
			"A CONTRATADA executará os serviços com autonomia técnica, não se estabelecendo entre as partes qualquer relação de subordinação, sociedade ou representação.",
		),
		section("DA ACEITAÇÃO DOS SERVIÇOS",
			fmt.Sprintf("Os serviços serão considerados aceitos se não houver manifestação contrária da CONTRATANTE em até %s dias após a entrega.", Count(DefaultComplaintDays)),
		),
		section("DA SUBCONTRATAÇÃO",
			"É vedada a subcontratação total dos serviços. A subcontratação parcial dependerá de prévia anuência da CONTRATANTE, permanecendo a CONTRATADA responsável perante esta.",
		),
	}
}
