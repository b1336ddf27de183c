package plan

import "webmaker/models"

// CatalogVersion identifies the authoritative catalog revision. There is
// exactly one catalog definition in the process; earlier iterations of the
// site carried duplicated service lists and that must not come back.
const CatalogVersion = "2024-06"

// Catalog is the immutable service/bundle definition plus derived indexes.
// Built once at startup; safe for concurrent reads.
type Catalog struct {
	steps   []models.PlanStep
	bundles []models.Bundle

	byID         map[string]models.Service
	bundleByID   map[string]models.Bundle
	firstStepIDs map[string]bool
	autoIncluded []models.Service
}

// DefaultCatalog builds the production catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(planSteps, bundles, autoIncludedServices)
}

// NewCatalog indexes the given definition. Auto-included services are not
// part of any step; they ride along with every selection at zero price.
func NewCatalog(steps []models.PlanStep, bundleList []models.Bundle, auto []models.Service) *Catalog {
	c := &Catalog{
		steps:        steps,
		bundles:      bundleList,
		byID:         make(map[string]models.Service),
		bundleByID:   make(map[string]models.Bundle),
		firstStepIDs: make(map[string]bool),
		autoIncluded: auto,
	}
	for _, step := range steps {
		for _, svc := range step.Services {
			c.byID[svc.ID] = svc
		}
	}
	for _, svc := range auto {
		c.byID[svc.ID] = svc
	}
	for _, b := range bundleList {
		c.bundleByID[b.ID] = b
	}
	if len(steps) > 0 {
		for _, svc := range steps[0].Services {
			c.firstStepIDs[svc.ID] = true
		}
	}
	return c
}

// Steps returns the ordered wizard steps (summary step not included).
func (c *Catalog) Steps() []models.PlanStep { return c.steps }

// StepCount returns N; the summary step is N+1.
func (c *Catalog) StepCount() int { return len(c.steps) }

// SummaryStep returns the ordinal of the terminal summary step.
func (c *Catalog) SummaryStep() int { return len(c.steps) + 1 }

// Bundles returns the curated fixed-price kits.
func (c *Catalog) Bundles() []models.Bundle { return c.bundles }

// ServiceByID looks up any catalog service, auto-included ones too.
func (c *Catalog) ServiceByID(id string) (models.Service, bool) {
	svc, ok := c.byID[id]
	return svc, ok
}

// BundleByID looks up a bundle.
func (c *Catalog) BundleByID(id string) (models.Bundle, bool) {
	b, ok := c.bundleByID[id]
	return b, ok
}

// IsFirstStep reports whether the service is a project-type (step 1) choice.
func (c *Catalog) IsFirstStep(id string) bool { return c.firstStepIDs[id] }

// AutoIncluded returns the services present in every effective selection.
func (c *Catalog) AutoIncluded() []models.Service { return c.autoIncluded }

var bundles = []models.Bundle{
	{
		ID:                 "pack-experto",
		Name:               "Kit Experto",
		IncludedServiceIDs: []string{"basic", "blog", "contact-form", "chat", "seo-basic", "hosting", "analytics"},
		FixedPrice:         950,
		Description:        "Todo lo que necesita un negocio digital moderno",
		Savings:            220,
	},
	{
		ID:                 "pack-ecommerce",
		Name:               "Kit E-commerce",
		IncludedServiceIDs: []string{"basic", "ecommerce-basic", "whatsapp-integration", "hosting", "ssl", "analytics"},
		FixedPrice:         850,
		Description:        "Perfecto para vender online desde el primer día",
		Savings:            180,
	},
}

// The 30 days of free maintenance promised on the summary screen travel with
// every selection and never price in.
var autoIncludedServices = []models.Service{
	{
		ID:           "maintenance",
		Name:         "Mantenimiento 30 días",
		Description:  "Soporte técnico gratuito durante los 30 días posteriores a la entrega",
		UnitPrice:    0,
		AutoIncluded: true,
	},
}

var planSteps = []models.PlanStep{
	{
		Ordinal:  1,
		Title:    "Tipo de Proyecto",
		Subtitle: "Selecciona la base de tu proyecto digital",
		Services: []models.Service{
			{
				ID:          "basic",
				Name:        "Sitio Web",
				Description: "Página web profesional y moderna para tu negocio",
				UnitPrice:   300,
				Popular:     true,
				Tag:         "Ideal para la mayoría",
			},
			{
				ID:          "app",
				Name:        "Aplicación",
				Description: "App móvil nativa para iOS y Android",
				UnitPrice:   800,
				Tag:         "Para proyectos avanzados",
			},
		},
	},
	{
		Ordinal:  2,
		Title:    "Páginas & Contenido",
		Subtitle: "Expande tu proyecto con contenido adicional",
		Services: []models.Service{
			{
				ID:             "extra-page",
				Name:           "Página Adicional",
				Description:    "Sección personalizada para tu contenido",
				UnitPrice:      75,
				AllowsQuantity: true,
				MinQuantity:    1,
				MaxQuantity:    10,
				VolumeDiscount: &models.VolumeDiscount{ThresholdQty: 5, Percentage: 10},
			},
			{
				ID:          "blog",
				Name:        "Blog Integrado",
				Description: "Sistema completo de gestión de contenido",
				UnitPrice:   200,
				Popular:     true,
				Tag:         "Recomendado para SEO",
			},
			{
				ID:          "portfolio",
				Name:        "Galería Premium",
				Description: "Showcase visual para tus mejores trabajos",
				UnitPrice:   150,
				Tag:         "Perfecto para creativos",
			},
			{
				ID:          "landing-camp",
				Name:        "Landing para Campañas",
				Description: "Página de conversión optimizada para campañas o promociones",
				UnitPrice:   120,
				Tag:         "Para campañas publicitarias",
			},
			{
				ID:          "client-area",
				Name:        "Área de Clientes",
				Description: "Zona privada para acceso restringido con login",
				UnitPrice:   250,
				Tag:         "Ideal para academias",
			},
		},
	},
	{
		Ordinal:  3,
		Title:    "Funcionalidades",
		Subtitle: "Características que potenciarán tu proyecto",
		Services: []models.Service{
			{
				ID:          "contact-form",
				Name:        "Contacto Avanzado",
				Description: "Formularios inteligentes con notificaciones automáticas",
				UnitPrice:   100,
			},
			{
				ID:          "newsletter",
				Name:        "Newsletter",
				Description: "Sistema completo de email marketing",
				UnitPrice:   150,
				Popular:     true,
				Tag:         "Recomendado para negocios",
			},
			{
				ID:          "booking",
				Name:        "Sistema de Reservas",
				Description: "Gestión automática de citas y servicios",
				UnitPrice:   300,
				Tag:         "Ideal para servicios",
			},
			{
				ID:          "chat",
				Name:        "Chat en Vivo",
				Description: "Atención al cliente automatizada",
				UnitPrice:   120,
			},
			{
				ID:          "ecommerce-basic",
				Name:        "Tienda Online",
				Description: "Sistema de venta online con pasarela de pago integrada",
				UnitPrice:   400,
				Popular:     true,
				Tag:         "Para vender online",
			},
			{
				ID:          "whatsapp-integration",
				Name:        "WhatsApp Business",
				Description: "Botón de contacto directo vía WhatsApp con mensaje personalizado",
				UnitPrice:   100,
				Tag:         "Ideal para negocios físicos",
			},
			{
				ID:          "google-map",
				Name:        "Mapa Interactivo",
				Description: "Mapa de ubicación integrado con Google Maps",
				UnitPrice:   50,
				Tag:         "Para negocios físicos",
			},
			{
				ID:          "zapier",
				Name:        "Automatizaciones (Zapier)",
				Description: "Conecta tu web con más de 5000 apps para automatizar procesos",
				UnitPrice:   150,
				Tag:         "Para optimizar procesos",
			},
		},
	},
	{
		Ordinal:  4,
		Title:    "Infraestructura",
		Subtitle: "Servicios técnicos para un funcionamiento óptimo",
		Services: []models.Service{
			{
				ID:          "domain",
				Name:        "Dominio Personalizado",
				Description: "Tu marca en internet con dominio propio",
				UnitPrice:   50,
			},
			{
				ID:          "hosting",
				Name:        "Hosting Premium",
				Description: "Servidores optimizados con 99.9% uptime",
				UnitPrice:   120,
				Popular:     true,
			},
			{
				ID:          "seo-basic",
				Name:        "SEO Profesional",
				Description: "Optimización para motores de búsqueda",
				UnitPrice:   200,
				Tag:         "Esencial para visibilidad",
			},
			{
				ID:          "ssl",
				Name:        "Certificado SSL",
				Description: "Seguridad y confianza para tus usuarios",
				UnitPrice:   30,
			},
			{
				ID:          "analytics",
				Name:        "Analytics Avanzado",
				Description: "Métricas detalladas y reportes automáticos",
				UnitPrice:   80,
			},
			{
				ID:          "backup",
				Name:        "Backups Automáticos",
				Description: "Copia de seguridad periódica para máxima tranquilidad",
				UnitPrice:   100,
				Tag:         "Recomendado para seguridad",
			},
			{
				ID:          "spam-filter",
				Name:        "Antispam en Formularios",
				Description: "Protección contra bots y spam en los formularios",
				UnitPrice:   40,
			},
			{
				ID:          "corporate-email",
				Name:        "Email Corporativo",
				Description: "Correo profesional con dominio propio y configuración segura",
				UnitPrice:   70,
				Tag:         "Perfecto para autónomos",
			},
		},
	},
}
