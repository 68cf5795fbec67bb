package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	// Layout
	message.SetString(lang, "app.name", "Portal de Vagas")
	message.SetString(lang, "title.page", "%s | Portal de Vagas")
	message.SetString(lang, "nav.categories", "Categorias")
	message.SetString(lang, "nav.jobs", "Vagas")
	message.SetString(lang, "nav.admin_jobs", "Minhas vagas")
	message.SetString(lang, "nav.post_job", "Publicar vaga")
	message.SetString(lang, "toast.dismiss", "Fechar")

	// Categories
	message.SetString(lang, "title.categories", "Setores de emprego")
	message.SetString(lang, "categories.heading", "Setores de emprego")
	message.SetString(lang, "categories.subheading", "Encontre vagas por categoria")
	message.SetString(lang, "categories.loading", "Carregando categorias...")
	message.SetString(lang, "categories.empty", "Nenhuma categoria encontrada")
	message.SetString(lang, "categories.jobs_available", "%d vagas disponíveis")
	message.SetString(lang, "categories.browse_jobs", "Ver vagas")
	message.SetString(lang, "categories.browse_all.title", "VER TODOS OS SETORES")
	message.SetString(lang, "categories.browse_all.subtitle", "Explore todas as categorias")
	message.SetString(lang, "categories.error.fetch_failed", "Falha ao buscar categorias")
	message.SetString(lang, "categories.toast.load_failed", "Falha ao carregar categorias")

	// Job posting
	message.SetString(lang, "title.job_create", "Publicar nova vaga")
	message.SetString(lang, "jobpost.heading", "Publicar nova vaga")
	message.SetString(lang, "jobpost.subheading", "Preencha os detalhes da posição que deseja anunciar")
	message.SetString(lang, "jobpost.field.title", "Título da vaga")
	message.SetString(lang, "jobpost.field.description", "Descrição")
	message.SetString(lang, "jobpost.field.requirements", "Requisitos (separados por vírgula)")
	message.SetString(lang, "jobpost.placeholder.title", "Título da vaga")
	message.SetString(lang, "jobpost.placeholder.salary", "Ex: 50000")
	message.SetString(lang, "jobpost.placeholder.description", "Descrição curta da vaga")
	message.SetString(lang, "jobpost.placeholder.requirements", "ex.: JavaScript, React, MongoDB")
	message.SetString(lang, "jobpost.field.salary", "Salário")
	message.SetString(lang, "jobpost.field.experience_level", "Experiência (anos)")
	message.SetString(lang, "jobpost.field.location", "Local")
	message.SetString(lang, "jobpost.field.job_type", "Tipo de vaga")
	message.SetString(lang, "jobpost.field.position", "Posições")
	message.SetString(lang, "jobpost.field.company", "Empresa")
	message.SetString(lang, "jobpost.field.category", "Categoria")
	message.SetString(lang, "jobpost.select.location", "Selecione o local")
	message.SetString(lang, "jobpost.select.job_type", "Selecione o tipo")
	message.SetString(lang, "jobpost.select.company", "Selecione a empresa")
	message.SetString(lang, "jobpost.select.category", "Selecione a categoria")
	message.SetString(lang, "jobpost.submit", "Publicar vaga")
	message.SetString(lang, "jobpost.submitting", "Publicando...")
	message.SetString(lang, "jobpost.toast.missing_fields", "Campos obrigatórios ausentes: %s")
	message.SetString(lang, "jobpost.toast.fetch_categories_failed", "Falha ao buscar categorias")
	message.SetString(lang, "jobpost.toast.post_failed", "Falha ao publicar a vaga")
	message.SetString(lang, "jobpost.toast.posted", "Vaga publicada com sucesso")

	// Job lists
	message.SetString(lang, "title.jobs", "Vagas")
	message.SetString(lang, "title.admin_jobs", "Minhas vagas")
	message.SetString(lang, "jobs.heading", "Vagas recentes")
	message.SetString(lang, "jobs.admin_heading", "Minhas vagas publicadas")
	message.SetString(lang, "jobs.new", "Nova vaga")
	message.SetString(lang, "jobs.empty", "Nenhuma vaga encontrada")
	message.SetString(lang, "jobs.salary", "Salário: %s")
	message.SetString(lang, "jobs.positions", "%d posições")
	message.SetString(lang, "jobs.error.fetch_failed", "Falha ao buscar vagas")
	message.SetString(lang, "jobs.toast.load_failed", "Falha ao carregar vagas")

	// Errors
	message.SetString(lang, "error.title", "Algo deu errado")
	message.SetString(lang, "error.not_found", "Página não encontrada")
	message.SetString(lang, "error.unavailable", "O serviço está temporariamente indisponível.")
	message.SetString(lang, "error.forbidden", "Você não tem permissão para isso.")
	message.SetString(lang, "error.back_home", "Voltar para categorias")
}
