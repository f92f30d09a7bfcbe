package errormsg

const FundNotFoundMessage = "fund.notFound"

type FundNotFoundError struct {
	Message string
}

func (f *FundNotFoundError) Error() string {
	return messageOr(f.Message, FundNotFoundMessage)
}

func (f *FundNotFoundError) Code() string {
	return "fund.notFound"
}

func (f *FundNotFoundError) Param() string {
	return "fund"
}

func (f *FundNotFoundError) Extensions() map[string]interface{} {
	return extensions(f)
}
