package servers

//go:generate oapi-codegen --config=server.cfg.yaml ../../../api/openapi.yml
