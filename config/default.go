package config

// This values doesnt have a default value because depend on the
// environment / deployment
const DefaultMandatoryVars = `
# LocalChainID is the chain id of the chain this node settles on
LocalChainID = 2
# USDCAsset is the 32 bytes asset id of USDC on the local chain
USDCAsset = "0x000000000000000000000000a0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"
# RelayerAccount is the local account used by the relayer to redeem fills and pay gas dropoffs
RelayerAccount = "0x0000000000000000000000000000000000000000000000000000000000000001"
# CustodianAccount owns the registry, and receives the relaying fees, unless set otherwise on [Registry]
CustodianAccount = "0x0000000000000000000000000000000000000000000000000000000000000002"
# SwapExecutorURL is the JSON-RPC endpoint of the swap executor
SwapExecutorURL = "http://localhost:8545"
# GuardianAddress is the guardian signing the inbound messages, add the rest on [Bridge]
GuardianAddress = "0x58CC3AE5C097b213cE3c81979e1B9f9570746AA5"
`

// This doesn't belong to config, but are the vars used
// to avoid repetition in config-files
const DefaultVars = `
PathRWData = "/tmp/swaplayer"
`

// DefaultValues is the default configuration
const DefaultValues = `
# Log configuration
[Log]
  # Environment is the environment where the node is running
  Environment = "development" # "production" or "development"
  # Level is the log level
  Level = "info"
  # Outputs are the outputs where the logs will be written
  Outputs = ["stderr"]

[Common]
  LocalChainID = {{LocalChainID}}
  USDCAsset = "{{USDCAsset}}"

[Storage]
  # DBPath is the sqlite database shared by the registry, the custody ledger, staging and redemption
  DBPath = "{{PathRWData}}/swaplayer.sqlite"

[RPC]
  # Host defines the network adapter that will be used to serve the HTTP requests
  Host = "0.0.0.0"
  # Port defines the port to serve the endpoints via HTTP
  Port = 5576
  # ReadTimeout is the HTTP server read timeout
  # check net/http.server.ReadTimeout and net/http.server.ReadHeaderTimeout
  ReadTimeout = "2s"
  # WriteTimeout is the HTTP server write timeout
  # check net/http.server.WriteTimeout
  WriteTimeout = "2s"
  # MaxRequestsPerIPAndSecond defines how much requests a single IP can
  # send within a single second
  MaxRequestsPerIPAndSecond = 10

[Registry]
  # Custodian roles used to initialize the registry on the first run
  Owner = "{{CustodianAccount}}"
  OwnerAssistant = "{{CustodianAccount}}"
  FeeUpdater = "{{CustodianAccount}}"
  FeeRecipient = "{{CustodianAccount}}"

[Relayer]
  # Enabled indicates if the relayer should be run or not
  Enabled = true
  # DBPath is the path of the relayer queue database (mdbx)
  DBPath = "{{PathRWData}}/relayer"
  # RelayerAccount is the account that redeems the fills and pays the gas dropoffs
  RelayerAccount = "{{RelayerAccount}}"
  # RetryAfterErrorPeriod is the time that will be waited when an unexpected error happens before retry
  RetryAfterErrorPeriod = "1s"
  # MaxRetryAttemptsAfterError is the maximum number of consecutive attempts that will happen before panicing.
  # Any number smaller than zero will be considered as unlimited retries
  MaxRetryAttemptsAfterError = -1
  # WaitOnEmptyQueue is the time that will be waited before trying to redeem the next fill when the queue is empty
  WaitOnEmptyQueue = "1s"

[SwapExecutor]
  # URL of the remote swap executor
  URL = "{{SwapExecutorURL}}"
  # Timeout of every call to the executor
  Timeout = "10s"
  # MaxConsecutiveFailures opens the circuit breaker after that many failed calls in a row
  MaxConsecutiveFailures = 5
  # OpenTimeout is the time the breaker stays open before letting a trial call through
  OpenTimeout = "30s"

[Bridge]
  # Guardians are the addresses whose signatures authenticate inbound messages
  Guardians = ["{{GuardianAddress}}"]
  # GuardianQuorum is the number of guardian signatures required on a message
  GuardianQuorum = 1
  # Attesters are the addresses allowed to attest USDC burn receipts
  Attesters = []

[Staging]
  # ResendHandoffsPeriod is how often the handoffs that couldn't be sent to the bridge are retried
  ResendHandoffsPeriod = "10s"
`
